package serviceerrors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrContextCanceled  = errors.New("context canceled")
	ErrDeadlineExceeded = errors.New("deadline exceeded")
)

// AuthError carries the server-provided message for a rejected login or
// registration, so views can show it verbatim.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
