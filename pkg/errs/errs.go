package errs

import "errors"

// Err represents a custom error type with a message.
// Such errors are expected ones and can be shown to the user as is.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error or any error in its chain is of custom Err type.
func IsExpected(err error) bool {
	var expectedErr *Err
	return errors.As(err, &expectedErr)
}
