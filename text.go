package constval

import "strconv"

///////////////////////////////////////////////////////////////////////////////
// Text Pipeline
///////////////////////////////////////////////////////////////////////////////

// textScalar interprets one textual token under the declared kind. Text
// carries no type information of its own, so a token that does not parse
// under the declared kind classifies as a plain string.
func textScalar(want Kind, raw string) scalar {
	switch want {
	case KindBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return scalar{kind: KindBool, b: b, raw: raw}
		}
	case KindInt, KindUint:
		sc := numberScalar(raw)
		if sc.kind == KindInt || sc.kind == KindUint {
			return sc
		}
	case KindString:
		return scalar{kind: KindString, s: raw, raw: raw}
	}
	return scalar{kind: KindString, raw: raw}
}

// UnmarshalText implements encoding.TextUnmarshaler, so constants work in
// any pipeline that falls back to text decoding (query parameters, header
// values, flag parsing).
func (c Const[T, V]) UnmarshalText(text []byte) error {
	want := c.expected()
	return match(want, textScalar(want.kind, string(text)))
}

// MarshalText implements encoding.TextMarshaler. It always emits the
// declared constant in canonical form, unquoted.
func (c Const[T, V]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
