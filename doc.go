package strux

// Package strux provides:
//
// - Runtime validation of untrusted input against immutable Schema descriptors
// - A stable error model via Issues (JSON Pointer, code, message)
// - Strip: derived schemas whose decode output contains only declared fields,
//   as a freshly built object that never aliases the input
// - Construct-style entry points that wrap decode failures in a structured
//   ConstructionError instead of raw Issues
//
// Design policy:
// - Keep the contract surface in the root package; place constructors under dsl/.
// - Dispatch shape-specific helpers (Strip, FieldKeys) on the Kind tag, never
//   by probing for attributes.
// - Report bad input as Issues values; reserve plain errors for API misuse
//   (ErrUnsupportedKind, ErrNoFields).
//
// Typical usage:
//
//	event := dsl.ObjectWithOptionals("Event",
//	    dsl.Props{"title": dsl.StringOf()},
//	    dsl.Props{"duration": dsl.NumberOf()},
//	)
//	stripped := strux.MustStrip(event)
//	v, err := strux.DecodeJSON(ctx, stripped, data)
//
//	factory := strux.MustWithFactory(stripped)
//	v, err = factory.Construct(ctx, input)
