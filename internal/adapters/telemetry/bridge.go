// Package telemetry bridges OpenTelemetry spans to the logger.
package telemetry

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/latt/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor and reports completed spans to
// the logger at debug level. It is the only span sink this process has; no
// spans ever leave the process.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the completed span with its duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	duration := s.EndTime().Sub(s.StartTime())
	b.logger.Debug(fmt.Sprintf("span %s completed in %s", s.Name(), duration))
}

// Shutdown implements sdktrace.SpanProcessor.
func (b *Bridge) Shutdown(_ context.Context) error { return nil }

// ForceFlush implements sdktrace.SpanProcessor.
func (b *Bridge) ForceFlush(_ context.Context) error { return nil }
