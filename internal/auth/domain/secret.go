package domain

import (
	"encoding/json"
	"log/slog"
)

const redacted = "[REDACTED]"

// Secret wraps a sensitive string so it cannot leak through generic
// formatting, logging or serialization paths. The raw value is only
// reachable through an explicit Expose call.
type Secret struct {
	value string
}

func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Expose returns the wrapped value.
func (s Secret) Expose() string {
	return s.value
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}
