package core

import (
	"context"
	"time"
)

// ImageEditor edits an existing image from an instruction.
type ImageEditor interface {
	EditImage(ctx context.Context, req *ImageEditRequest) (*ImageResponse, error)
}

// ImageGenerator produces an image from a prompt alone.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req *ImageGenerateRequest) (*ImageResponse, error)
}

// Provider is an image backend. Each call is a single attempt.
type Provider interface {
	// ID returns the provider identifier (e.g., "gemini").
	ID() string

	ImageEditor
	ImageGenerator
}

// Client loads inputs, calls the provider once, and persists the result.
type Client struct {
	provider  Provider
	telemetry TelemetryHook
	now       func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new Client with the given provider and options.
func NewClient(p Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider:  p,
		telemetry: NoopTelemetryHook{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithTelemetry sets the telemetry hook for the client.
func WithTelemetry(h TelemetryHook) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.telemetry = h
		}
	}
}

// Provider returns the underlying provider.
func (c *Client) Provider() Provider {
	return c.provider
}

// Edit loads inputPath, sends it with req to the provider, and writes the
// returned image to outputPath. req.Image is filled from inputPath.
// The input file is checked before anything is sent.
func (c *Client) Edit(ctx context.Context, inputPath string, req ImageEditRequest, outputPath string) (*ImageResult, error) {
	img, err := LoadImage(inputPath)
	if err != nil {
		return nil, err
	}
	req.Image = img

	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.observe(OperationEdit, req.Model, func() (*ImageResponse, error) {
		return c.provider.EditImage(ctx, &req)
	})
	if err != nil {
		return nil, err
	}
	return SaveImageResponse(resp, outputPath)
}

// Generate sends req to the provider and writes the returned image to outputPath.
func (c *Client) Generate(ctx context.Context, req ImageGenerateRequest, outputPath string) (*ImageResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.observe(OperationGenerate, req.Model, func() (*ImageResponse, error) {
		return c.provider.GenerateImage(ctx, &req)
	})
	if err != nil {
		return nil, err
	}
	return SaveImageResponse(resp, outputPath)
}

func (c *Client) observe(op Operation, model ModelID, call func() (*ImageResponse, error)) (*ImageResponse, error) {
	start := c.now()
	c.telemetry.OnRequestStart(RequestStartEvent{
		Provider:  c.provider.ID(),
		Model:     model,
		Operation: op,
		Start:     start,
	})

	resp, err := call()

	end := RequestEndEvent{
		Provider:  c.provider.ID(),
		Model:     model,
		Operation: op,
		Start:     start,
		End:       c.now(),
		Err:       err,
	}
	if resp != nil {
		for _, p := range resp.Parts {
			if p.IsImage() {
				end.Images++
			} else if p.Text != "" {
				end.TextParts++
			}
		}
	}
	c.telemetry.OnRequestEnd(end)

	return resp, err
}
