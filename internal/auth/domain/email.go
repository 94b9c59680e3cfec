package domain

import (
	"net/mail"
	"strings"
)

// Email is a validated, normalized email address. The zero value is not
// valid; construct one through ParseEmail.
type Email struct {
	value string
}

// ParseEmail validates raw as a bare RFC 5322 address and normalizes it
// to lower case. Display names ("Bob <bob@example.com>") are rejected.
func ParseEmail(raw string) (Email, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: strings.ToLower(raw)}, nil
}

func (e Email) String() string {
	return e.value
}

// IsZero reports whether the email was constructed through ParseEmail.
func (e Email) IsZero() bool {
	return e.value == ""
}
