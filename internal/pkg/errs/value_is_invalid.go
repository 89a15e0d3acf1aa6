package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsInvalid is the sentinel error for values that fail validation.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError indicates that a named value failed a validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the error
// that explains why the value is invalid.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error implements the error interface.
func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

// Unwrap returns the sentinel so that errors.Is(err, ErrValueIsInvalid) holds.
func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
