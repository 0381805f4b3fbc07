package gemini

import "github.com/petal-labs/imagegen/core"

// Image models (Nano Banana).
const (
	ModelGemini25FlashImage core.ModelID = "gemini-2.5-flash-image"     // Nano Banana - fast/efficient
	ModelGemini3ProImage    core.ModelID = "gemini-3-pro-image-preview" // Nano Banana Pro - professional with reasoning
)

// DefaultModel is used when the caller does not pick a model.
const DefaultModel = ModelGemini25FlashImage

var imageModels = []core.ModelID{ModelGemini25FlashImage, ModelGemini3ProImage}

// ImageModels returns the accepted model IDs, default first.
func ImageModels() []core.ModelID {
	out := make([]core.ModelID, len(imageModels))
	copy(out, imageModels)
	return out
}

// IsImageModel reports whether id is one of the accepted models.
func IsImageModel(id core.ModelID) bool {
	for _, m := range imageModels {
		if m == id {
			return true
		}
	}
	return false
}

func validateModel(id core.ModelID) error {
	if id == "" {
		return core.ErrModelRequired
	}
	if !IsImageModel(id) {
		return &core.ValidationError{Field: "model", Value: string(id), Err: core.ErrInvalidModel}
	}
	return nil
}
