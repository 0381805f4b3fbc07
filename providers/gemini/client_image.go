package gemini

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/petal-labs/imagegen/core"
)

// EditImage sends the input image and instruction in a single generateContent call.
// Invalid requests are rejected before the network is touched; SDK errors are
// returned unchanged.
func (p *Gemini) EditImage(ctx context.Context, req *core.ImageEditRequest) (*core.ImageResponse, error) {
	if err := validateModel(req.Model); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contents, config := mapImageEditRequest(req)
	p.log.WithFields(logrus.Fields{
		"model":      req.Model,
		"input":      req.Image.Path,
		"input_mime": req.Image.MIMEType,
		"input_size": len(req.Image.Data),
		"dimensions": [2]int{req.Image.Width, req.Image.Height},
	}).WithFields(shapingFields(config)).Debug("sending image edit request")

	return p.send(ctx, req.Model, contents, config)
}

// GenerateImage sends a text-only prompt in a single generateContent call.
func (p *Gemini) GenerateImage(ctx context.Context, req *core.ImageGenerateRequest) (*core.ImageResponse, error) {
	if err := validateModel(req.Model); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contents, config := mapImageGenerateRequest(req)
	p.log.WithField("model", req.Model).
		WithFields(shapingFields(config)).
		Debug("sending image generate request")

	return p.send(ctx, req.Model, contents, config)
}

func (p *Gemini) send(ctx context.Context, model core.ModelID, contents []*genai.Content, config *genai.GenerateContentConfig) (*core.ImageResponse, error) {
	resp, err := p.generate(ctx, string(model), contents, config)
	if err != nil {
		return nil, err
	}

	out := mapImageResponse(model, resp)
	p.log.WithFields(logrus.Fields{
		"model": model,
		"parts": len(out.Parts),
	}).Debug("received response")
	return out, nil
}

func shapingFields(config *genai.GenerateContentConfig) logrus.Fields {
	f := logrus.Fields{}
	if config.ImageConfig == nil {
		return f
	}
	if config.ImageConfig.AspectRatio != "" {
		f["aspect_ratio"] = config.ImageConfig.AspectRatio
	}
	if config.ImageConfig.ImageSize != "" {
		f["image_size"] = config.ImageConfig.ImageSize
	}
	return f
}
