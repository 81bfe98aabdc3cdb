package iris

import (
	"errors"
)

// UserError is a recoverable caller mistake (bad time window, unknown
// station). Its message is safe to return verbatim.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func NewUserError(message string) error {
	return &UserError{Message: message}
}

// IsUserError reports whether err (or anything it wraps) is a UserError.
func IsUserError(err error) bool {
	var userError *UserError
	return errors.As(err, &userError)
}
