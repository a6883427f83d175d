package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// ValidationError carries a client-facing message plus the names of the
// fields that were missing, in submission order.
type ValidationError struct {
	Message       string
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
