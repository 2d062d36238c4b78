package apperr

import "errors"

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation error")

// ValidationError is a recoverable, user-facing rejection of a submitted form.
// Code is stable and machine readable, Message is shown to the admin.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func New(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets errors.Is compare against the sentinel instances declared by each
// domain package, and against ErrValidation.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	var other *ValidationError
	if errors.As(target, &other) {
		return other.Code == e.Code
	}
	return false
}

// Wrap returns a copy of e carrying cause.
func (e *ValidationError) Wrap(cause error) *ValidationError {
	return &ValidationError{Code: e.Code, Message: e.Message, Err: cause}
}

// AsValidation unwraps err into a *ValidationError.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
