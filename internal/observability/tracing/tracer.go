// Package tracing provides OpenTelemetry request tracing for the HTTP API.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("elbouchra-cms")

// GetTracer returns the application tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
