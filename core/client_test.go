package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// mockProvider records requests and replays a canned response.
type mockProvider struct {
	resp *ImageResponse
	err  error

	editCalls     int
	generateCalls int
	lastEdit      *ImageEditRequest
	lastGenerate  *ImageGenerateRequest
}

func (m *mockProvider) ID() string { return "mock" }

func (m *mockProvider) EditImage(ctx context.Context, req *ImageEditRequest) (*ImageResponse, error) {
	m.editCalls++
	m.lastEdit = req
	return m.resp, m.err
}

func (m *mockProvider) GenerateImage(ctx context.Context, req *ImageGenerateRequest) (*ImageResponse, error) {
	m.generateCalls++
	m.lastGenerate = req
	return m.resp, m.err
}

// testTelemetryHook records events.
type testTelemetryHook struct {
	startEvents []RequestStartEvent
	endEvents   []RequestEndEvent
}

func (h *testTelemetryHook) OnRequestStart(e RequestStartEvent) {
	h.startEvents = append(h.startEvents, e)
}

func (h *testTelemetryHook) OnRequestEnd(e RequestEndEvent) {
	h.endEvents = append(h.endEvents, e)
}

func imageResponse(parts ...ImagePart) *ImageResponse {
	return &ImageResponse{Parts: parts}
}

func TestClientEdit(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir, "photo.png", encodePNG)
	output := filepath.Join(dir, "edited.png")

	p := &mockProvider{resp: imageResponse(
		ImagePart{Text: "Added a rainbow"},
		ImagePart{Data: []byte("edited"), MIMEType: "image/png"},
	)}
	client := NewClient(p)

	res, err := client.Edit(context.Background(), input, ImageEditRequest{
		Model:  "gemini-2.5-flash-image",
		Prompt: "Add a rainbow in the sky",
	}, output)
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}

	if p.editCalls != 1 {
		t.Errorf("editCalls = %d, want 1", p.editCalls)
	}
	if p.lastEdit.Image.Path != input || p.lastEdit.Image.MIMEType != "image/png" {
		t.Errorf("Image = {Path:%q MIMEType:%q}, want loaded input", p.lastEdit.Image.Path, p.lastEdit.Image.MIMEType)
	}
	if p.lastEdit.AspectRatio != "" || p.lastEdit.Size != "" {
		t.Errorf("shaping = %q/%q, want unset", p.lastEdit.AspectRatio, p.lastEdit.Size)
	}
	if res.Text != "Added a rainbow" {
		t.Errorf("Text = %q, want 'Added a rainbow'", res.Text)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "edited" {
		t.Errorf("output = %q, want 'edited'", data)
	}
}

func TestClientEditMissingInput(t *testing.T) {
	dir := t.TempDir()
	p := &mockProvider{resp: imageResponse(ImagePart{Data: []byte("x")})}
	client := NewClient(p)

	_, err := client.Edit(context.Background(), filepath.Join(dir, "nope.jpg"), ImageEditRequest{
		Model:  "gemini-2.5-flash-image",
		Prompt: "Anything",
	}, filepath.Join(dir, "out.png"))

	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Edit() error = %v, want ErrInputNotFound", err)
	}
	if p.editCalls != 0 {
		t.Errorf("editCalls = %d, want 0", p.editCalls)
	}
}

func TestClientEditInvalidBeforeProvider(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir, "photo.png", encodePNG)
	p := &mockProvider{}
	client := NewClient(p)

	_, err := client.Edit(context.Background(), input, ImageEditRequest{
		Model:       "gemini-2.5-flash-image",
		Prompt:      "Anything",
		AspectRatio: "5:3",
	}, filepath.Join(dir, "out.png"))

	if !errors.Is(err, ErrInvalidAspectRatio) {
		t.Fatalf("Edit() error = %v, want ErrInvalidAspectRatio", err)
	}
	if p.editCalls != 0 {
		t.Errorf("editCalls = %d, want 0", p.editCalls)
	}
}

func TestClientEditProviderError(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir, "photo.png", encodePNG)
	output := filepath.Join(dir, "out.png")
	providerErr := errors.New("rpc error: quota exceeded")

	client := NewClient(&mockProvider{err: providerErr})

	_, err := client.Edit(context.Background(), input, ImageEditRequest{
		Model:  "gemini-2.5-flash-image",
		Prompt: "Anything",
	}, output)
	if err != providerErr {
		t.Errorf("Edit() error = %v, want provider error unchanged", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output written after provider error")
	}
}

func TestClientEditTextOnly(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir, "photo.png", encodePNG)
	output := filepath.Join(dir, "out.png")

	client := NewClient(&mockProvider{resp: imageResponse(ImagePart{Text: "No."})})

	_, err := client.Edit(context.Background(), input, ImageEditRequest{
		Model:  "gemini-2.5-flash-image",
		Prompt: "Anything",
	}, output)
	if !errors.Is(err, ErrNoImageGenerated) {
		t.Fatalf("Edit() error = %v, want ErrNoImageGenerated", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("output written for text-only response")
	}
}

func TestClientGenerate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.png")
	p := &mockProvider{resp: imageResponse(ImagePart{Data: []byte("generated")})}

	res, err := NewClient(p).Generate(context.Background(), ImageGenerateRequest{
		Model:       "gemini-3-pro-image-preview",
		Prompt:      "A sunset",
		AspectRatio: AspectRatio16x9,
		Size:        ImageSize4K,
	}, output)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if p.generateCalls != 1 {
		t.Errorf("generateCalls = %d, want 1", p.generateCalls)
	}
	if p.lastGenerate.AspectRatio != AspectRatio16x9 || p.lastGenerate.Size != ImageSize4K {
		t.Errorf("shaping = %q/%q, want 16:9/4K", p.lastGenerate.AspectRatio, p.lastGenerate.Size)
	}
	if res.Text != "" {
		t.Errorf("Text = %q, want empty", res.Text)
	}
}

func TestClientTelemetry(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir, "photo.png", encodePNG)

	hook := &testTelemetryHook{}
	client := NewClient(&mockProvider{resp: imageResponse(
		ImagePart{Text: "a"},
		ImagePart{Data: []byte("x")},
		ImagePart{Text: "b"},
	)}, WithTelemetry(hook))

	ticks := []time.Time{time.Unix(100, 0), time.Unix(102, 0)}
	client.now = func() time.Time {
		tick := ticks[0]
		ticks = ticks[1:]
		return tick
	}

	if _, err := client.Edit(context.Background(), input, ImageEditRequest{
		Model:  "gemini-2.5-flash-image",
		Prompt: "Anything",
	}, filepath.Join(dir, "out.png")); err != nil {
		t.Fatal(err)
	}

	if len(hook.startEvents) != 1 || len(hook.endEvents) != 1 {
		t.Fatalf("events = %d start, %d end, want 1 each", len(hook.startEvents), len(hook.endEvents))
	}

	start := hook.startEvents[0]
	if start.Provider != "mock" || start.Model != "gemini-2.5-flash-image" || start.Operation != OperationEdit {
		t.Errorf("start event = %+v", start)
	}

	end := hook.endEvents[0]
	if end.Duration() != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", end.Duration())
	}
	if end.Images != 1 || end.TextParts != 2 {
		t.Errorf("Images/TextParts = %d/%d, want 1/2", end.Images, end.TextParts)
	}
	if end.Err != nil {
		t.Errorf("Err = %v, want nil", end.Err)
	}
}

func TestClientTelemetryOnError(t *testing.T) {
	hook := &testTelemetryHook{}
	providerErr := errors.New("boom")
	client := NewClient(&mockProvider{err: providerErr}, WithTelemetry(hook))

	_, _ = client.Generate(context.Background(), ImageGenerateRequest{
		Model:  "gemini-2.5-flash-image",
		Prompt: "A sunset",
	}, filepath.Join(t.TempDir(), "out.png"))

	if len(hook.endEvents) != 1 {
		t.Fatalf("len(endEvents) = %d, want 1", len(hook.endEvents))
	}
	if hook.endEvents[0].Err != providerErr {
		t.Errorf("Err = %v, want %v", hook.endEvents[0].Err, providerErr)
	}
	if hook.endEvents[0].Operation != OperationGenerate {
		t.Errorf("Operation = %q, want generate", hook.endEvents[0].Operation)
	}
}

func TestWithTelemetryNil(t *testing.T) {
	client := NewClient(&mockProvider{}, WithTelemetry(nil))
	if _, ok := client.telemetry.(NoopTelemetryHook); !ok {
		t.Errorf("telemetry = %T, want NoopTelemetryHook", client.telemetry)
	}
}
