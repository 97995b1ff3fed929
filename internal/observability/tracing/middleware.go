package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"elbouchra-cms/internal/handler/http/pathutil"
	"elbouchra-cms/internal/handler/http/responsewriter"
)

// Middleware wraps handlers in a server span. It accepts W3C Trace Context
// headers from upstream, exposes the trace ID in the X-Trace-Id response
// header and records method, route and status code as span attributes.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(
			r.Context(),
			propagation.HeaderCarrier(r.Header),
		)

		route := pathutil.NormalizePath(r.URL.Path)
		ctx, span := tracer.Start(ctx, r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		span.SetAttributes(
			attribute.Int("http.status_code", rw.StatusCode()),
			attribute.String("http.method", r.Method),
			attribute.String("http.route", route),
		)
		if rw.StatusCode() >= 500 {
			span.SetAttributes(attribute.Bool("error", true))
		}
	})
}
