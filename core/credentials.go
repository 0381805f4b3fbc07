package core

import "os"

// Environment variables holding the API key, in lookup order.
const (
	EnvAPIKey       = "NANO_BANANA_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY" // legacy fallback
)

// ResolveAPIKey returns the first non-empty key among NANO_BANANA_API_KEY
// and GEMINI_API_KEY as seen by getenv. Nothing is cached.
func ResolveAPIKey(getenv func(string) string) (Secret, error) {
	for _, name := range []string{EnvAPIKey, EnvGeminiAPIKey} {
		if v := getenv(name); v != "" {
			return NewSecret(v), nil
		}
	}
	return Secret{}, ErrMissingCredentials
}

// APIKeyFromEnv resolves the API key from the current process environment.
func APIKeyFromEnv() (Secret, error) {
	return ResolveAPIKey(os.Getenv)
}
