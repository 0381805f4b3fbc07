package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrMissingCredentials means neither API key variable is set.
	ErrMissingCredentials = errors.New("NANO_BANANA_API_KEY or GEMINI_API_KEY not set in environment")

	// ErrInputNotFound means the input image path does not exist.
	ErrInputNotFound = errors.New("input image not found")

	// ErrUnsupportedImage means the input file could not be decoded as an image.
	ErrUnsupportedImage = errors.New("unsupported image format")

	// ErrNoImageGenerated means the service answered without any image part.
	ErrNoImageGenerated = errors.New("no image was generated. Check your instruction and try again")
)

// Validation errors. These are raised before any network call.
var (
	ErrModelRequired      = errors.New("model required")
	ErrPromptRequired     = errors.New("instruction required")
	ErrImageRequired      = errors.New("input image required")
	ErrInvalidModel       = errors.New("invalid model")
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
	ErrInvalidImageSize   = errors.New("invalid image size")
)

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Unwrap returns the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PathError ties a sentinel to the file path it was raised for.
type PathError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Path)
}

// Unwrap returns the sentinel for errors.Is.
func (e *PathError) Unwrap() error {
	return e.Err
}
