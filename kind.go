package strux

// Kind tags the runtime shape of a schema. Helpers that only apply to certain
// shapes (Strip, FieldKeys) dispatch on this tag rather than probing for
// capabilities.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindArray
	KindMap
	KindObject       // object with required declared fields
	KindPartial      // object with all-optional declared fields
	KindIntersection // merge of several object-shaped schemas
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindPartial:
		return "partial"
	case KindIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// FieldBearer is implemented by schemas that declare a field mapping. Keys are
// returned in ascending order; callers must treat them as a set.
type FieldBearer interface {
	FieldNames() []string
}

// MemberBearer is implemented by intersection schemas and exposes the ordered
// member sequence.
type MemberBearer interface {
	Members() []Schema[map[string]any]
}
