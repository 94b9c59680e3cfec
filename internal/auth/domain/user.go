package domain

// User is a credential record. It is created at signup and immutable
// thereafter; uniqueness is keyed by email. PasswordHash is filled in by
// the user store when the record is persisted.
type User struct {
	Email        Email
	PasswordHash PasswordHash
	Requires2FA  bool
}

func NewUser(email Email, requires2FA bool) User {
	return User{
		Email:       email,
		Requires2FA: requires2FA,
	}
}
