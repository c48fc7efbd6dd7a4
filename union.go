package constval

import "encoding/json"

///////////////////////////////////////////////////////////////////////////////
// Untagged Union Resolution
///////////////////////////////////////////////////////////////////////////////

// DecodeFirst tries to decode data into each candidate in order and returns
// the index of the first one that accepts it. Candidates must be non-nil
// pointers. A constant field inside a candidate rejects the input with a
// kind or value mismatch, which moves resolution on to the next candidate.
//
// If every candidate rejects the input, DecodeFirst returns -1 and a
// *NoVariantError carrying each candidate's failure.
func DecodeFirst(data []byte, candidates ...any) (int, error) {
	attempts := make([]error, 0, len(candidates))
	for i, candidate := range candidates {
		err := json.Unmarshal(data, candidate)
		if err == nil {
			return i, nil
		}
		attempts = append(attempts, err)
	}
	return -1, &NoVariantError{Attempts: attempts}
}

// variant pairs a registered name with a factory for a fresh destination.
type variant struct {
	name    string
	factory func() any
}

// Union resolves an untagged union by trying each registered variant's
// decode in registration order and accepting the first that succeeds.
// Variants are typically records distinguished by a leading Const
// discriminant field.
//
// A Union is safe for concurrent use after registration is complete.
type Union struct {
	variants []variant
	names    map[string]struct{}
}

// NewUnion returns an empty union resolver.
func NewUnion() *Union {
	return &Union{names: make(map[string]struct{})}
}

// Register adds a variant under a unique name. factory must return a fresh
// non-nil pointer to the variant's record type on every call. Variants are
// tried in registration order, so register the most specific ones first.
func (u *Union) Register(name string, factory func() any) error {
	if _, exists := u.names[name]; exists {
		return ErrVariantAlreadyRegistered
	}
	u.names[name] = struct{}{}
	u.variants = append(u.variants, variant{name: name, factory: factory})
	return nil
}

// Resolve decodes data into the first variant that accepts it and returns
// the variant's registered name along with the populated record. If no
// variant accepts the input, it returns a *NoVariantError.
func (u *Union) Resolve(data []byte) (string, any, error) {
	attempts := make([]error, 0, len(u.variants))
	for _, v := range u.variants {
		dest := v.factory()
		err := json.Unmarshal(data, dest)
		if err == nil {
			return v.name, dest, nil
		}
		attempts = append(attempts, err)
	}
	return "", nil, &NoVariantError{Attempts: attempts}
}
