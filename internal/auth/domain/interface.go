package domain

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_stores.go -package=mocks

import "context"

// UserStore owns the credential records. AddUser hashes the password and
// check-and-inserts atomically; a duplicate email is rejected, never
// overwritten. Only hashes are stored, never plaintext.
type UserStore interface {
	AddUser(ctx context.Context, user User, password Password) error
	GetUser(ctx context.Context, email Email) (User, error)
	ValidateUser(ctx context.Context, email Email, password Password) error
}

// BannedTokenStore records session tokens that must no longer be
// accepted. AddToken is idempotent and entries expire no later than the
// token they revoke.
type BannedTokenStore interface {
	AddToken(ctx context.Context, token string) error
	HasToken(ctx context.Context, token string) (bool, error)
}

// TwoFACodeStore holds at most one live (login attempt id, code) pair per
// email. AddCode overwrites any prior challenge for the email.
type TwoFACodeStore interface {
	AddCode(ctx context.Context, email Email, id LoginAttemptID, code TwoFACode) error
	GetCode(ctx context.Context, email Email) (LoginAttemptID, TwoFACode, error)
	RemoveCode(ctx context.Context, email Email) error
}

// EmailClient delivers 2FA codes out-of-band.
type EmailClient interface {
	Send(ctx context.Context, recipient Email, subject, body string) error
}

// PasswordHasher turns plaintext passwords into hashes at rest and
// verifies candidates against them. Compare returns
// ErrInvalidCredentials on mismatch.
type PasswordHasher interface {
	Hash(ctx context.Context, password Password) (PasswordHash, error)
	Compare(ctx context.Context, hash PasswordHash, candidate Password) error
}
