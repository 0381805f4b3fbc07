// Package gemini implements the imagegen provider for the Google Gemini
// image models on top of the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/petal-labs/imagegen/core"
)

// ProviderID is the registry name of this provider.
const ProviderID = "gemini"

type generateContentFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Gemini is an image provider backed by the Gemini API.
// Gemini is safe for concurrent use.
type Gemini struct {
	config   Config
	generate generateContentFunc
	log      logrus.FieldLogger
}

// New creates a Gemini provider authenticated with apiKey.
func New(ctx context.Context, apiKey core.Secret, opts ...Option) (*Gemini, error) {
	if apiKey.IsEmpty() {
		return nil, core.ErrMissingCredentials
	}

	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	p := &Gemini{config: cfg, generate: cfg.generate, log: cfg.Logger}
	if p.generate != nil {
		return p, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey.Expose(),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Headers: cfg.Headers,
		},
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	p.generate = client.Models.GenerateContent

	return p, nil
}

// ID returns the provider identifier.
func (p *Gemini) ID() string {
	return ProviderID
}

// Models returns the image models this provider accepts.
func (p *Gemini) Models() []core.ModelID {
	return ImageModels()
}

var _ core.Provider = (*Gemini)(nil)
