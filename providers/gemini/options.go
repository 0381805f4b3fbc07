package gemini

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Config holds configuration for the Gemini provider.
type Config struct {
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string

	// HTTPClient is the HTTP client handed to the SDK. Nil uses the SDK default.
	HTTPClient *http.Client

	// Headers contains optional extra headers to include in requests.
	Headers http.Header

	// Logger receives debug output. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// generate replaces the SDK call; set by tests.
	generate generateContentFunc
}

// Option configures the Gemini provider.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithHeader adds an extra header to include in requests.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}

// WithLogger sets the logger used for request debugging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
