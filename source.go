package constval

import (
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Value Sources
///////////////////////////////////////////////////////////////////////////////

// scalar is one primitive value pulled from a source pipeline, normalized
// so the comparison logic never has to care which wire format it came from.
// Exactly one of the payload fields is meaningful, selected by kind.
type scalar struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	s    string
	raw  string // original token text, kept for diagnostics
}

// scalarOf normalizes a declared constant into scalar form. v must be one
// of the Primitive types; anything else classifies as KindInvalid and can
// never match.
func scalarOf(v any) scalar {
	switch x := v.(type) {
	case bool:
		return scalar{kind: KindBool, b: x, raw: strconv.FormatBool(x)}
	case int8:
		return intScalar(int64(x))
	case int16:
		return intScalar(int64(x))
	case int32:
		return intScalar(int64(x))
	case int64:
		return intScalar(x)
	case uint8:
		return uintScalar(uint64(x))
	case uint16:
		return uintScalar(uint64(x))
	case uint32:
		return uintScalar(uint64(x))
	case uint64:
		return uintScalar(x)
	case string:
		return scalar{kind: KindString, s: x, raw: x}
	}
	return scalar{kind: KindInvalid}
}

func intScalar(v int64) scalar {
	return scalar{kind: KindInt, i: v, raw: strconv.FormatInt(v, 10)}
}

func uintScalar(v uint64) scalar {
	return scalar{kind: KindUint, u: v, raw: strconv.FormatUint(v, 10)}
}

// numberScalar classifies a textual number token. Integral tokens become
// KindInt or KindUint depending on sign and magnitude; anything else
// (fractional, exponent, out of 64-bit range with a sign) is KindFloat.
func numberScalar(raw string) scalar {
	if strings.HasPrefix(raw, "-") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return scalar{kind: KindInt, i: i, raw: raw}
		}
		return scalar{kind: KindFloat, raw: raw}
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return scalar{kind: KindUint, u: u, raw: raw}
	}
	return scalar{kind: KindFloat, raw: raw}
}

// match runs the core decode rule: a kind-correct extraction gated in front
// of a single equality comparison. The two failure points are deliberately
// distinct so callers can tell "wrong shape entirely" from "right shape,
// wrong discriminant".
func match(want, got scalar) error {
	if !compatible(want.kind, got.kind) {
		return &KindMismatchError{Want: want.kind, Got: got.kind, Raw: got.raw}
	}
	if !equal(want, got) {
		return &ValueMismatchError{Kind: want.kind, Want: want.raw, Got: got.raw}
	}
	return nil
}

// equal compares two kind-compatible scalars. Signed and unsigned integers
// compare numerically across the sign boundary.
func equal(want, got scalar) bool {
	switch want.kind {
	case KindBool:
		return want.b == got.b
	case KindString:
		return want.s == got.s
	case KindInt:
		switch got.kind {
		case KindInt:
			return want.i == got.i
		case KindUint:
			return want.i >= 0 && uint64(want.i) == got.u
		}
	case KindUint:
		switch got.kind {
		case KindInt:
			return got.i >= 0 && uint64(got.i) == want.u
		case KindUint:
			return want.u == got.u
		}
	}
	return false
}
