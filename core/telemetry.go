package core

import "time"

// Operation names the kind of provider call.
type Operation string

const (
	OperationEdit     Operation = "edit"
	OperationGenerate Operation = "generate"
)

// TelemetryHook receives request lifecycle events.
//
// Events carry operational metadata only. The API key, the instruction text,
// the model's text response and image bytes never appear in them, so a hook
// may log events verbatim.
type TelemetryHook interface {
	// OnRequestStart is called before the provider is called.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called after the provider returns.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent describes a request about to be sent.
type RequestStartEvent struct {
	Provider  string
	Model     ModelID
	Operation Operation
	Start     time.Time
}

// RequestEndEvent describes a completed request.
type RequestEndEvent struct {
	Provider  string
	Model     ModelID
	Operation Operation
	Start     time.Time
	End       time.Time
	Images    int   // image parts in the response
	TextParts int   // text parts in the response
	Err       error // nil on success
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook discards all events.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

var _ TelemetryHook = NoopTelemetryHook{}
