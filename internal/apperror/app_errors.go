package apperror

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("stored session is invalid")
	ErrUnknownStorage  = errors.New("unknown session storage")
	ErrUnknownUI       = errors.New("unknown user interface")
)
