package constval

///////////////////////////////////////////////////////////////////////////////
// Primitive Kinds
///////////////////////////////////////////////////////////////////////////////

// Kind identifies the primitive category of a value moving through a
// decode or encode pipeline.
//
// Constants may only be declared for KindBool, KindInt, KindUint, and
// KindString. The remaining kinds exist so that a mismatched input can be
// classified precisely in a [KindMismatchError].
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindComposite // object/array/table; never a primitive constant
)

// kindNames maps each Kind to the name used in error messages. Adding a
// new kind means extending this table and classify(); the comparison logic
// in source.go is kind-agnostic.
var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindNull:      "null",
	KindBool:      "bool",
	KindInt:       "integer",
	KindUint:      "unsigned integer",
	KindFloat:     "float",
	KindString:    "string",
	KindComposite: "composite",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// kindOf reports the Kind a constant of type T is declared under.
func kindOf[T Primitive]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case int8, int16, int32, int64:
		return KindInt
	case uint8, uint16, uint32, uint64:
		return KindUint
	case string:
		return KindString
	}
	return KindInvalid
}

// compatible reports whether a source value of kind got can satisfy a
// constant declared under kind want. Signed and unsigned integers are one
// category at the wire level; sign and width problems surface as value
// mismatches, not kind mismatches.
func compatible(want, got Kind) bool {
	switch want {
	case KindInt, KindUint:
		return got == KindInt || got == KindUint
	default:
		return want == got
	}
}
