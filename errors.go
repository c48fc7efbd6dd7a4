package constval

import (
	"errors"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	// ErrMismatch is wrapped by every decode failure intrinsic to this
	// package. An untagged-union resolver only needs
	// errors.Is(err, ErrMismatch) to know a variant did not match.
	ErrMismatch = errors.New("value does not match the declared constant")

	// ErrVariantAlreadyRegistered is returned when a variant with the same
	// name is registered twice on the same Union.
	ErrVariantAlreadyRegistered = errors.New("a variant with this name is already registered on this union")
)

// KindMismatchError is returned when the source offered a value whose
// primitive kind does not match the kind the constant was declared under,
// e.g. a string where a bool was expected. The equality check never ran.
type KindMismatchError struct {
	Want Kind   // kind the constant is declared under
	Got  Kind   // kind the source actually offered
	Raw  string // raw source token, for diagnostics
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s %q", e.Want, e.Got, e.Raw)
}

// Unwrap marks the error as a constant mismatch.
func (e *KindMismatchError) Unwrap() error { return ErrMismatch }

// ValueMismatchError is returned when the source offered a correctly-kinded
// value that differs from the declared constant. Both values are carried in
// their canonical textual form.
type ValueMismatchError struct {
	Kind Kind   // kind the constant is declared under
	Want string // canonical form of the declared constant
	Got  string // canonical form of the offered value
}

// Error implements the error interface.
func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("expected %s constant %s, got %s", e.Kind, e.Want, e.Got)
}

// Unwrap marks the error as a constant mismatch.
func (e *ValueMismatchError) Unwrap() error { return ErrMismatch }

// NoVariantError is returned by DecodeFirst and Union.Resolve when every
// candidate variant rejected the input. Attempts holds one error per
// candidate, in the order they were tried.
type NoVariantError struct {
	Attempts []error
}

// Error implements the error interface.
func (e *NoVariantError) Error() string {
	var b strings.Builder
	b.WriteString("no variant accepted the input")
	for i, err := range e.Attempts {
		fmt.Fprintf(&b, "; variant %d: %v", i, err)
	}
	return b.String()
}

// Unwrap exposes the per-variant failures to errors.Is and errors.As.
func (e *NoVariantError) Unwrap() []error { return e.Attempts }
