package constval

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// JSON Pipeline
///////////////////////////////////////////////////////////////////////////////

// jsonScalar classifies one raw JSON token and pulls its value into scalar
// form. The token has already been validated by the outer decoder, so the
// only job here is kind classification.
func jsonScalar(res gjson.Result) scalar {
	switch res.Type {
	case gjson.Null:
		return scalar{kind: KindNull, raw: res.Raw}
	case gjson.True:
		return scalar{kind: KindBool, b: true, raw: res.Raw}
	case gjson.False:
		return scalar{kind: KindBool, b: false, raw: res.Raw}
	case gjson.Number:
		return numberScalar(res.Raw)
	case gjson.String:
		return scalar{kind: KindString, s: res.Str, raw: res.Raw}
	case gjson.JSON:
		return scalar{kind: KindComposite, raw: res.Raw}
	}
	return scalar{kind: KindInvalid, raw: res.Raw}
}

// UnmarshalJSON implements json.Unmarshaler. It consumes exactly one JSON
// value and fails with a KindMismatchError or ValueMismatchError unless
// that value is the declared constant.
func (c Const[T, V]) UnmarshalJSON(data []byte) error {
	return match(c.expected(), jsonScalar(gjson.ParseBytes(data)))
}

// MarshalJSON implements json.Marshaler. It always emits the declared
// constant.
func (c Const[T, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Value())
}
