// Package telemetry provides the tracer for build phases.
package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zigcli/internal/core/ports"
)

// TracerName is the instrumentation name used for build spans.
const TracerName = "go.trai.ch/zigcli"

// NewTracer returns a tracer whose spans are reported through the logger
// when they end. Spans are processed synchronously.
func NewTracer(logger ports.Logger, opts ...sdktrace.TracerProviderOption) trace.Tracer {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	}, opts...)
	return sdktrace.NewTracerProvider(opts...).Tracer(TracerName)
}
