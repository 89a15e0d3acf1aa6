package errs

import (
	"errors"
	"fmt"
)

// ErrObjectAlreadyExists is the sentinel error for inserts that collide with an
// existing row. Use errors.Is with this sentinel to classify
// ObjectAlreadyExistsError values.
var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError indicates that an object with the given ID is
// already persisted. ParamName names the object kind, ID carries the
// conflicting identifier.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectAlreadyExistsError creates an ObjectAlreadyExistsError without an
// underlying cause.
func NewObjectAlreadyExistsError(paramName string, id any) ObjectAlreadyExistsError {
	return ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectAlreadyExistsErrorWithCause creates an ObjectAlreadyExistsError
// wrapping the database error that signalled the collision.
func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) ObjectAlreadyExistsError {
	return ObjectAlreadyExistsError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error implements the error interface.
func (e ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ID))
}

// Unwrap returns the sentinel so that errors.Is(err, ErrObjectAlreadyExists) holds.
func (e ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
