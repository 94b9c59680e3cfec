package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// LoginAttemptID identifies one 2FA login attempt. A fresh one is
// generated per challenge; clients echo it back on verification.
type LoginAttemptID struct {
	value string
}

// ParseLoginAttemptID validates a client-supplied id as UUID-shaped.
func ParseLoginAttemptID(raw string) (LoginAttemptID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return LoginAttemptID{}, ErrInvalidLoginAttemptID
	}

	return LoginAttemptID{value: id.String()}, nil
}

// NewLoginAttemptID generates a fresh random id.
func NewLoginAttemptID() LoginAttemptID {
	return LoginAttemptID{value: uuid.NewString()}
}

func (id LoginAttemptID) String() string {
	return id.value
}

// TwoFACodeLength is the exact number of digits in a 2FA code.
const TwoFACodeLength = 6

// TwoFACode is a 6-digit one-time code delivered out-of-band.
type TwoFACode struct {
	value string
}

// ParseTwoFACode validates a client-supplied code as exactly 6 ASCII digits.
func ParseTwoFACode(raw string) (TwoFACode, error) {
	if len(raw) != TwoFACodeLength {
		return TwoFACode{}, ErrInvalidTwoFACode
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return TwoFACode{}, ErrInvalidTwoFACode
		}
	}

	return TwoFACode{value: raw}, nil
}

// NewTwoFACode generates a random code. Each digit is drawn uniformly
// from 0-9, so leading zeros are as likely as any other digit.
func NewTwoFACode() (TwoFACode, error) {
	digits := make([]byte, TwoFACodeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return TwoFACode{}, fmt.Errorf("failed to read random digit: %w", err)
		}
		digits[i] = '0' + byte(n.Int64())
	}

	return TwoFACode{value: string(digits)}, nil
}

func (c TwoFACode) String() string {
	return c.value
}
