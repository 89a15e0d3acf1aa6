package errs

import (
	"errors"
	"fmt"
)

// ErrVersionIsInvalid is the sentinel error for invalid aggregate versions.
var ErrVersionIsInvalid = errors.New("version is invalid")

// VersionIsInvalidError indicates that an aggregate version value is not usable.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping the error
// that explains why the version is invalid.
func NewVersionIsInvalidError(paramName string, cause error) VersionIsInvalidError {
	return VersionIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without an
// underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string) VersionIsInvalidError {
	return VersionIsInvalidError{ParamName: paramName}
}

// Error implements the error interface.
func (e VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName))
}

// Unwrap returns the sentinel so that errors.Is(err, ErrVersionIsInvalid) holds.
func (e VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
