package core

// ModelID identifies a backend image model.
type ModelID string

// AspectRatio is the requested width:height ratio of the output image.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio2x3  AspectRatio = "2:3"
	AspectRatio3x2  AspectRatio = "3:2"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio4x5  AspectRatio = "4:5"
	AspectRatio5x4  AspectRatio = "5:4"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio21x9 AspectRatio = "21:9"
)

var aspectRatios = []AspectRatio{
	AspectRatio1x1, AspectRatio2x3, AspectRatio3x2, AspectRatio3x4, AspectRatio4x3,
	AspectRatio4x5, AspectRatio5x4, AspectRatio9x16, AspectRatio16x9, AspectRatio21x9,
}

// AspectRatios returns the supported aspect ratios in display order.
func AspectRatios() []AspectRatio {
	out := make([]AspectRatio, len(aspectRatios))
	copy(out, aspectRatios)
	return out
}

// IsValid reports whether the aspect ratio is a recognized value.
func (a AspectRatio) IsValid() bool {
	for _, r := range aspectRatios {
		if a == r {
			return true
		}
	}
	return false
}

// ImageSize is the output resolution tier.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K" // low
	ImageSize2K ImageSize = "2K" // medium
	ImageSize4K ImageSize = "4K" // high
)

// ImageSizes returns the supported resolution tiers from low to high.
func ImageSizes() []ImageSize {
	return []ImageSize{ImageSize1K, ImageSize2K, ImageSize4K}
}

// IsValid reports whether the image size is a recognized value.
func (s ImageSize) IsValid() bool {
	switch s {
	case ImageSize1K, ImageSize2K, ImageSize4K:
		return true
	default:
		return false
	}
}

// ImageInput is a local image loaded and decoded for submission.
type ImageInput struct {
	Path     string // Source path on disk
	Data     []byte // Encoded file contents, sent as-is
	MIMEType string // Sniffed from Data
	Format   string // Decoder name, e.g. "png", "jpeg", "webp"
	Width    int
	Height   int
}

// ImageEditRequest asks a model to edit one input image.
// Zero AspectRatio and Size mean "not set": the service default applies.
type ImageEditRequest struct {
	Model       ModelID
	Prompt      string
	Image       ImageInput
	AspectRatio AspectRatio
	Size        ImageSize
}

// Validate checks the request before any network call.
func (r *ImageEditRequest) Validate() error {
	if len(r.Image.Data) == 0 {
		return ErrImageRequired
	}
	return validateShaping(r.Model, r.Prompt, r.AspectRatio, r.Size)
}

// ImageGenerateRequest asks a model to produce an image from a prompt alone.
type ImageGenerateRequest struct {
	Model       ModelID
	Prompt      string
	AspectRatio AspectRatio
	Size        ImageSize
}

// Validate checks the request before any network call.
func (r *ImageGenerateRequest) Validate() error {
	return validateShaping(r.Model, r.Prompt, r.AspectRatio, r.Size)
}

func validateShaping(model ModelID, prompt string, ratio AspectRatio, size ImageSize) error {
	if model == "" {
		return ErrModelRequired
	}
	if prompt == "" {
		return ErrPromptRequired
	}
	if ratio != "" && !ratio.IsValid() {
		return &ValidationError{Field: "aspect ratio", Value: string(ratio), Err: ErrInvalidAspectRatio}
	}
	if size != "" && !size.IsValid() {
		return &ValidationError{Field: "image size", Value: string(size), Err: ErrInvalidImageSize}
	}
	return nil
}

// ImagePart is one unit of a model response: either text or an encoded image.
type ImagePart struct {
	Text     string
	Data     []byte
	MIMEType string
}

// IsImage reports whether the part carries image bytes.
func (p ImagePart) IsImage() bool {
	return len(p.Data) > 0
}

// ImageResponse is the ordered sequence of parts returned by a model.
type ImageResponse struct {
	Model ModelID
	Parts []ImagePart
}

// ImageResult describes what a completed request left on disk.
type ImageResult struct {
	OutputPath string
	MIMEType   string
	Images     int    // image parts written; the last one is on disk
	Text       string // last text part, empty when the model sent none
}
