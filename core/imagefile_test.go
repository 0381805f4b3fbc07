package core

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestImage encodes a small image with enc into dir/name.
func writeTestImage(t *testing.T, dir, name string, enc func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func encodePNG(buf *bytes.Buffer, img image.Image) error { return png.Encode(buf, img) }

func encodeJPEG(buf *bytes.Buffer, img image.Image) error { return jpeg.Encode(buf, img, nil) }

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		enc        func(*bytes.Buffer, image.Image) error
		wantMIME   string
		wantFormat string
	}{
		{"png", "photo.png", encodePNG, "image/png", "png"},
		{"jpeg", "photo.jpg", encodeJPEG, "image/jpeg", "jpeg"},
		{"extension ignored", "actually-png.jpg", encodePNG, "image/png", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestImage(t, dir, tt.file, tt.enc)

			img, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage() error = %v", err)
			}
			if img.MIMEType != tt.wantMIME {
				t.Errorf("MIMEType = %q, want %q", img.MIMEType, tt.wantMIME)
			}
			if img.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", img.Format, tt.wantFormat)
			}
			if img.Width != 4 || img.Height != 3 {
				t.Errorf("dimensions = %dx%d, want 4x3", img.Width, img.Height)
			}
			if img.Path != path {
				t.Errorf("Path = %q, want %q", img.Path, path)
			}

			raw, _ := os.ReadFile(path)
			if !bytes.Equal(img.Data, raw) {
				t.Error("Data should be the file bytes unchanged")
			}
		})
	}
}

func TestLoadImageNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jpg")

	_, err := LoadImage(path)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("LoadImage() error = %v, want ErrInputNotFound", err)
	}
	if want := "input image not found: " + path; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLoadImageNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(path, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadImage(path)
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("LoadImage() error = %v, want ErrUnsupportedImage", err)
	}
	if !strings.Contains(err.Error(), "text/plain") {
		t.Errorf("Error() = %q, want detected type in message", err.Error())
	}
}

func TestDetectMIMEType(t *testing.T) {
	var buf bytes.Buffer
	if err := encodePNG(&buf, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}

	if got := DetectMIMEType(buf.Bytes()); got != "image/png" {
		t.Errorf("DetectMIMEType(png) = %q, want image/png", got)
	}
	if got := DetectMIMEType([]byte("hello")); got != "text/plain" {
		t.Errorf("DetectMIMEType(text) = %q, want text/plain without charset", got)
	}
}
