package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/latt/internal/core/ports"
)

// Setup configures the global OTel SDK with a provider that forwards span
// completions to the logger. Engines obtain tracers via otel.Tracer, so this
// must run before the pipeline starts.
func Setup(logger ports.Logger) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
