package errors

import (
	"errors"
)

// API-level error taxonomy. Handlers map these to status codes; anything
// wrapping ErrUnexpected keeps its cause for diagnostics but clients only
// ever see the generic message.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrMissingToken         = errors.New("missing auth token")
	ErrInvalidToken         = errors.New("invalid auth token")
	ErrUnexpected           = errors.New("unexpected error")
)
