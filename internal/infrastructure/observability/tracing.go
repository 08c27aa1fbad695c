package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns the named tracer from the global provider. Until a
// TracerProvider with an exporter is installed via otel.SetTracerProvider,
// spans are no-ops.
func Tracer(name string) trace.Tracer {
	if name == "" {
		name = "globalpay"
	}
	return otel.Tracer(name)
}
