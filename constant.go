package constval

///////////////////////////////////////////////////////////////////////////////
// Constant-Validating Values
///////////////////////////////////////////////////////////////////////////////

// Primitive is the closed set of kinds a constant may be declared over.
type Primitive interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | string
}

// Value binds a compile-time literal into a type signature. Implementations
// are zero-size marker types whose ConstValue method returns the literal:
//
//	type answer struct{}
//
//	func (answer) ConstValue() int64 { return 42 }
//
// ConstValue must be a pure function of the type: it is called on the zero
// value and must always return the same result.
type Value[T Primitive] interface {
	ConstValue() T
}

// Const is a value that can only ever equal the constant declared by its
// marker type V. It stores nothing at runtime; the zero value is the
// singleton instance.
//
// Decoding a Const from JSON, TOML, or text fails unless the incoming
// value is exactly the constant. Encoding always emits the constant.
type Const[T Primitive, V Value[T]] struct{}

// Value returns the declared constant.
func (Const[T, V]) Value() T {
	var v V
	return v.ConstValue()
}

// Kind returns the primitive kind the constant is declared under.
func (Const[T, V]) Kind() Kind {
	return kindOf[T]()
}

// String renders the constant in its canonical textual form.
func (c Const[T, V]) String() string {
	return scalarOf(any(c.Value())).raw
}

// Equal reports whether two instances hold the same value. Only one logical
// value exists per instantiation, so this is always true.
func (Const[T, V]) Equal(Const[T, V]) bool { return true }

// Compare orders two instances. Only one logical value exists per
// instantiation, so the result is always 0.
func (Const[T, V]) Compare(Const[T, V]) int { return 0 }

// expected returns the declared constant in scalar form for matching.
func (c Const[T, V]) expected() scalar {
	return scalarOf(any(c.Value()))
}

///////////////////////////////////////////////////////////////////////////////
// Predeclared Markers
///////////////////////////////////////////////////////////////////////////////

// True is the marker for the boolean constant true.
type True struct{}

// ConstValue implements Value.
func (True) ConstValue() bool { return true }

// False is the marker for the boolean constant false.
type False struct{}

// ConstValue implements Value.
func (False) ConstValue() bool { return false }

// ConstTrue is a value that only decodes from the boolean true.
type ConstTrue = Const[bool, True]

// ConstFalse is a value that only decodes from the boolean false.
type ConstFalse = Const[bool, False]
