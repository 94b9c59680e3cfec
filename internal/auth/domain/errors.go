package domain

import "errors"

// Parse errors returned by the value-type constructors.
var (
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidLoginAttemptID = errors.New("invalid login attempt id")
	ErrInvalidTwoFACode      = errors.New("invalid 2FA code")
)

// Store capability errors.
var (
	ErrUserAlreadyExists      = errors.New("user already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrLoginAttemptIDNotFound = errors.New("login attempt id not found")
)
