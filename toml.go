package constval

import (
	"encoding/json"
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// TOML Pipeline
///////////////////////////////////////////////////////////////////////////////

// tomlScalar classifies a value handed over by the TOML decoder. The
// decoder delivers primitives as Go values, so classification is a type
// switch rather than token inspection.
func tomlScalar(v any) scalar {
	switch x := v.(type) {
	case nil:
		return scalar{kind: KindNull, raw: "nil"}
	case bool, int64, uint64, string:
		return scalarOf(x)
	case int:
		return intScalar(int64(x))
	case float64:
		return scalar{kind: KindFloat, raw: fmt.Sprintf("%v", x)}
	}
	return scalar{kind: KindComposite, raw: fmt.Sprintf("%v", v)}
}

// UnmarshalTOML implements toml.Unmarshaler for github.com/BurntSushi/toml.
// It receives the already-decoded primitive and fails unless it equals the
// declared constant.
func (c Const[T, V]) UnmarshalTOML(v any) error {
	return match(c.expected(), tomlScalar(v))
}

// MarshalTOML implements toml.Marshaler. It always emits the declared
// constant. JSON scalar syntax is valid TOML for every supported kind.
func (c Const[T, V]) MarshalTOML() ([]byte, error) {
	return json.Marshal(c.Value())
}
