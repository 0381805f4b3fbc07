// Package providers contains image provider implementations for imagegen.
//
// Each provider is implemented in its own subpackage (e.g., providers/gemini)
// and registers a [Factory] from its init function. Providers implement
// core.Provider:
//
//	type Provider interface {
//	    ID() string
//	    EditImage(ctx context.Context, req *ImageEditRequest) (*ImageResponse, error)
//	    GenerateImage(ctx context.Context, req *ImageGenerateRequest) (*ImageResponse, error)
//	}
//
// # Concurrency
//
// Providers SHOULD be safe for concurrent calls. If a provider cannot be
// concurrent-safe, it MUST document this limitation.
//
// # Errors
//
// Providers validate requests before any network call and return the
// core validation sentinels. Transport errors are returned as the
// underlying client produced them, without retries.
package providers

import (
	"github.com/sirupsen/logrus"

	"github.com/petal-labs/imagegen/core"
)

// Re-export core types for convenience.
// Provider implementations can import just the providers package.
type (
	// Provider is the interface that image providers must implement.
	Provider = core.Provider

	// ModelID is a string identifier for a model.
	ModelID = core.ModelID
)

// Options carries the settings shared by every provider factory.
type Options struct {
	// BaseURL overrides the provider endpoint. Empty uses the default.
	BaseURL string

	// Logger receives provider debug output. Nil discards it.
	Logger logrus.FieldLogger
}
