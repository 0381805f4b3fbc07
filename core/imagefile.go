package core

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage reads and decodes the image at path.
// A missing file yields a *PathError wrapping ErrInputNotFound.
func LoadImage(path string) (ImageInput, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ImageInput{}, &PathError{Path: path, Err: ErrInputNotFound}
		}
		return ImageInput{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImageInput{}, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageInput{}, &PathError{Path: path, Err: fmt.Errorf("%w (%s)", ErrUnsupportedImage, mimetype.Detect(data))}
	}
	bounds := img.Bounds()

	return ImageInput{
		Path:     path,
		Data:     data,
		MIMEType: DetectMIMEType(data),
		Format:   format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// DetectMIMEType sniffs the media type of encoded image bytes, without parameters.
func DetectMIMEType(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return mt
}

// writeImage stores encoded image bytes at path, replacing any existing file.
func writeImage(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
