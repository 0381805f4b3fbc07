package core

// Secret holds an API key. Every formatting and serialization path prints
// "[REDACTED]"; only Expose returns the key.
type Secret struct {
	value string
}

// NewSecret wraps value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer for %#v.
func (s Secret) GoString() string {
	return "core.Secret{[REDACTED]}"
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// MarshalText implements encoding.TextMarshaler, which also covers YAML and logrus fields.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// Expose returns the key for the authentication header.
func (s Secret) Expose() string {
	return s.value
}

// IsEmpty reports whether no key is held.
func (s Secret) IsEmpty() bool {
	return s.value == ""
}
