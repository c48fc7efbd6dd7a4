// Package constval provides wrapper types whose only legal value is a
// compile-time constant. Decoding one of these types from JSON, TOML, or
// text succeeds only when the incoming value exactly equals the declared
// constant, and encoding always emits that constant.
//
// The main use cases are disambiguating untagged unions by a discriminant
// field and defensive schema validation ("this field must always equal X").
//
// A constant is bound into a type through a zero-size marker implementing
// [Value]:
//
//	type tagOne struct{}
//
//	func (tagOne) ConstValue() int64 { return 1 }
//
//	type Bar struct {
//		Tag constval.Const[int64, tagOne] `json:"tag"`
//	}
//
// Decoding `{"tag": 1}` into Bar succeeds; decoding `{"tag": 2}` fails with
// a [ValueMismatchError]. Decoding `{"tag": "1"}` fails with a
// [KindMismatchError] because the field has the wrong primitive kind
// entirely. Both error types unwrap to [ErrMismatch], so an untagged-union
// resolver can treat either uniformly as "not this variant".
//
// For the common boolean case the package predeclares [ConstTrue] and
// [ConstFalse]:
//
//	type Foo struct {
//		Bar string             `json:"bar"`
//		Baz constval.ConstTrue `json:"baz"`
//	}
//
// Every instantiation of [Const] is zero-sized and its zero value is the
// singleton instance, so records containing one need no special
// construction step.
//
// Union resolution over variants distinguished by constant fields is
// provided by [DecodeFirst] and the [Union] registry.
package constval
