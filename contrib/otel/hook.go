// Package otel reports imagegen requests as OpenTelemetry spans.
//
//	tp := sdktrace.NewTracerProvider(...)
//	client := core.NewClient(provider, core.WithTelemetry(otel.NewHook(tp)))
package otel

import (
	"context"

	otelapi "go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/petal-labs/imagegen/core"
)

const instrumentationName = "github.com/petal-labs/imagegen/contrib/otel"

// Attribute keys set on every span.
const (
	AttrProvider  = attribute.Key("gen_ai.system")
	AttrModel     = attribute.Key("gen_ai.request.model")
	AttrOperation = attribute.Key("gen_ai.operation.name")
	AttrImages    = attribute.Key("imagegen.response.images")
	AttrTextParts = attribute.Key("imagegen.response.text_parts")
)

// Hook is a core.TelemetryHook that records one client span per request.
// The span is emitted when the request ends, using the event timestamps.
type Hook struct {
	tracer trace.Tracer
}

// NewHook returns a hook using tp. A nil tp uses the global provider.
func NewHook(tp trace.TracerProvider) *Hook {
	if tp == nil {
		tp = otelapi.GetTracerProvider()
	}
	return &Hook{tracer: tp.Tracer(instrumentationName)}
}

// OnRequestStart does nothing; the span is built from the end event.
func (h *Hook) OnRequestStart(core.RequestStartEvent) {}

// OnRequestEnd records the span.
func (h *Hook) OnRequestEnd(e core.RequestEndEvent) {
	_, span := h.tracer.Start(context.Background(), spanName(e.Operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithTimestamp(e.Start),
		trace.WithAttributes(
			AttrProvider.String(e.Provider),
			AttrModel.String(string(e.Model)),
			AttrOperation.String(string(e.Operation)),
		),
	)

	if e.Err != nil {
		span.RecordError(e.Err)
		span.SetStatus(codes.Error, e.Err.Error())
	} else {
		span.SetAttributes(
			AttrImages.Int(e.Images),
			AttrTextParts.Int(e.TextParts),
		)
	}

	span.End(trace.WithTimestamp(e.End))
}

func spanName(op core.Operation) string {
	return "imagegen." + string(op)
}

var _ core.TelemetryHook = (*Hook)(nil)
