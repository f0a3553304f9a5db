package quantum

import (
	"errors"
	"fmt"
)

// Domain errors for orbital evaluation.
var (
	// ErrInvalidParameter indicates quantum numbers or masses outside their valid range.
	ErrInvalidParameter = errors.New("quantum: invalid parameter")

	// ErrDomain indicates a special-function kernel received an out-of-domain input.
	ErrDomain = errors.New("quantum: argument outside kernel domain")

	// ErrNumericDegradation indicates precision loss in the evaluated field.
	ErrNumericDegradation = errors.New("quantum: numeric degradation")
)

// ParameterError wraps ErrInvalidParameter with the offending input.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// DomainError wraps ErrDomain with the kernel that rejected the input.
type DomainError struct {
	Kernel string
	Arg    string
	Value  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s(%s=%g)", ErrDomain, e.Kernel, e.Arg, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// NumericDegradation is advisory unless the output itself is non-finite.
type NumericDegradation struct {
	N      int
	L      int
	Reason string
}

func (e *NumericDegradation) Error() string {
	return fmt.Sprintf("%s: n=%d l=%d: %s", ErrNumericDegradation, e.N, e.L, e.Reason)
}

func (e *NumericDegradation) Unwrap() error {
	return ErrNumericDegradation
}

func invalid(name string, value float64, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}
