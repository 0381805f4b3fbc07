package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/petal-labs/imagegen/core"
)

// TelemetryHook reports request lifecycle events through a logrus logger.
type TelemetryHook struct {
	log logrus.FieldLogger
}

// NewTelemetryHook returns a hook that logs to log.
func NewTelemetryHook(log logrus.FieldLogger) *TelemetryHook {
	if log == nil {
		log = Discard()
	}
	return &TelemetryHook{log: log}
}

// OnRequestStart logs the outgoing request at debug level.
func (h *TelemetryHook) OnRequestStart(e core.RequestStartEvent) {
	h.log.WithFields(logrus.Fields{
		"provider":  e.Provider,
		"model":     e.Model,
		"operation": e.Operation,
	}).Debug("request started")
}

// OnRequestEnd logs completion at info level, or the failure at debug
// level since the command reports errors itself.
func (h *TelemetryHook) OnRequestEnd(e core.RequestEndEvent) {
	entry := h.log.WithFields(logrus.Fields{
		"provider":  e.Provider,
		"model":     e.Model,
		"operation": e.Operation,
		"duration":  e.Duration().String(),
	})

	if e.Err != nil {
		entry.WithError(e.Err).Debug("request failed")
		return
	}

	entry.WithFields(logrus.Fields{
		"images":     e.Images,
		"text_parts": e.TextParts,
	}).Info("request completed")
}

var _ core.TelemetryHook = (*TelemetryHook)(nil)
