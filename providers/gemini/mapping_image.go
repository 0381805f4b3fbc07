package gemini

import (
	"google.golang.org/genai"

	"github.com/petal-labs/imagegen/core"
)

// responseModalities asks for commentary text alongside the image.
var responseModalities = []string{"TEXT", "IMAGE"}

// mapImageEditRequest builds one user turn: the instruction first, then the image.
func mapImageEditRequest(req *core.ImageEditRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
		genai.NewPartFromBytes(req.Image.Data, imageMIMEType(req.Image)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return contents, mapImageConfig(req.AspectRatio, req.Size)
}

// mapImageGenerateRequest builds a text-only user turn.
func mapImageGenerateRequest(req *core.ImageGenerateRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(req.Prompt)}, genai.RoleUser),
	}
	return contents, mapImageConfig(req.AspectRatio, req.Size)
}

// mapImageConfig attaches ImageConfig only when a shaping parameter was set,
// and sets only the fields that were set, so the service defaults apply otherwise.
// Note: imageSize is only honored by gemini-3-pro-image-preview.
func mapImageConfig(ratio core.AspectRatio, size core.ImageSize) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: append([]string(nil), responseModalities...),
	}
	if ratio == "" && size == "" {
		return cfg
	}

	cfg.ImageConfig = &genai.ImageConfig{
		AspectRatio: string(ratio),
		ImageSize:   string(size),
	}
	return cfg
}

func imageMIMEType(img core.ImageInput) string {
	if img.MIMEType != "" {
		return img.MIMEType
	}
	return core.DetectMIMEType(img.Data)
}

// mapImageResponse flattens the first candidate into ordered parts.
// Thought parts are dropped; they are model reasoning, not output.
func mapImageResponse(model core.ModelID, resp *genai.GenerateContentResponse) *core.ImageResponse {
	r := &core.ImageResponse{Model: model}
	if resp == nil || len(resp.Candidates) == 0 {
		return r
	}

	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return r
	}

	for _, part := range cand.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		switch {
		case part.Text != "":
			r.Parts = append(r.Parts, core.ImagePart{Text: part.Text})
		case part.InlineData != nil && len(part.InlineData.Data) > 0:
			r.Parts = append(r.Parts, core.ImagePart{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			})
		}
	}

	return r
}
