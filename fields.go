package strux

import (
	"fmt"
	"sort"
)

// FieldKeys computes the set of field names a structural schema recognizes.
// Object and partial schemas contribute their declared mapping directly; an
// intersection contributes the union of every member's keys. Keys are returned
// in ascending order for determinism; callers must treat the result as a set.
//
// A schema (or intersection member) that declares no field mapping is a usage
// error: FieldKeys fails with an error wrapping ErrNoFields rather than
// silently under-reporting the member's fields.
func FieldKeys(s Schema[map[string]any]) ([]string, error) {
	if fb, ok := any(s).(FieldBearer); ok {
		names := fb.FieldNames()
		out := make([]string, len(names))
		copy(out, names)
		sort.Strings(out)
		return out, nil
	}
	if mb, ok := any(s).(MemberBearer); ok {
		seen := map[string]struct{}{}
		for i, m := range mb.Members() {
			fb, ok := any(m).(FieldBearer)
			if !ok {
				return nil, fmt.Errorf("%w: intersection %q member %d (%s)", ErrNoFields, s.Name(), i, m.Name())
			}
			for _, k := range fb.FieldNames() {
				seen[k] = struct{}{}
			}
		}
		out := make([]string, 0, len(seen))
		for k := range seen {
			out = append(out, k)
		}
		sort.Strings(out)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q (%s)", ErrNoFields, s.Name(), s.Kind())
}

// MustFieldKeys is like FieldKeys but panics on error.
func MustFieldKeys(s Schema[map[string]any]) []string {
	keys, err := FieldKeys(s)
	if err != nil {
		panic(err)
	}
	return keys
}
