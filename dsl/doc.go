// Package dsl provides the schema constructors for strux.
//
// Overview
//   - Object(name, props): object schema whose declared fields are all required.
//   - Partial(name, props): object schema whose declared fields are all optional.
//   - Intersection(name, members...): a value conforms if it conforms to every member.
//   - ObjectWithOptionals(name, required, optional): sugar for the common
//     required+optional object, built as Intersection(Object, Partial).
//   - Primitives: String()/Bool()/Number(), plus Array(elem) and MapAny().
//   - AnyAdapter: field-level wrapper around Schema[T]; obtain one with
//     StringOf()/BoolOf()/NumberOf()/ArrayOf(), or SchemaOf[T] for any schema.
//     Chain .Nullable() to accept explicit nulls.
//
// Object-shaped schemas validate declared fields but pass unknown keys
// through into the decoded output (a fresh copy of the input, never the input
// map itself). To drop unknown keys, wrap the schema with strux.Strip.
//
// Example
//
//	event := dsl.ObjectWithOptionals("Event",
//	    dsl.Props{"title": dsl.StringOf()},
//	    dsl.Props{"duration": dsl.NumberOf()},
//	)
//	stripped := strux.MustStrip(event)
//	v, err := strux.DecodeJSON(ctx, stripped, body)
package dsl
