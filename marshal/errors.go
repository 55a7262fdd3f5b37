package marshal

import (
	"github.com/juju/errors"
)

// ErrInvalidArgument is returned when Marshal is handed an absent request object.
var ErrInvalidArgument = errors.New("invalid argument passed to Marshal")

// MarshallingError wraps anything that went wrong while a request body was being built.
type MarshallingError struct {
	Target string
	Cause  error
}

func (e *MarshallingError) Error() string {
	if e.Target == "" {
		return "unable to marshal request to JSON: " + e.Cause.Error()
	}
	return "unable to marshal " + e.Target + " request to JSON: " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e *MarshallingError) Unwrap() error {
	return e.Cause
}

// IsInvalidArgument reports whether err is, or was traced from, ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && errors.Cause(err) == ErrInvalidArgument
}

// IsMarshallingFailure reports whether err is, or was traced from, a *MarshallingError.
func IsMarshallingFailure(err error) bool {
	if err == nil {
		return false
	}
	_, ok := errors.Cause(err).(*MarshallingError)
	return ok
}
