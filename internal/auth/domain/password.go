package domain

// MinPasswordLength is the only composition rule enforced on passwords.
const MinPasswordLength = 8

// Password is a validated plaintext password as received at the signup
// and login boundaries. It is never persisted; stores keep a
// PasswordHash instead, and the two must not be conflated.
type Password struct {
	value Secret
}

func ParsePassword(raw string) (Password, error) {
	if len(raw) < MinPasswordLength {
		return Password{}, ErrInvalidPassword
	}

	return Password{value: NewSecret(raw)}, nil
}

// Expose returns the plaintext. Only hashing code should need this.
func (p Password) Expose() string {
	return p.value.Expose()
}

func (p Password) String() string {
	return p.value.String()
}

// PasswordHash is an encoded password digest as kept at rest. Verification
// goes through a PasswordHasher, never through string comparison.
type PasswordHash string
