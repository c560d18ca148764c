package gallery

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/renderprop/internal/fixture"
)

// defaultTracerName is used when the config names no tracer.
const defaultTracerName = "renderprop"

// tracer wraps fixture renders in spans. It uses the global
// OpenTelemetry tracer provider, which is a no-op until the host
// installs one.
type tracer struct {
	t trace.Tracer
}

func newTracer(name string) tracer {
	if name == "" {
		name = defaultTracerName
	}
	return tracer{t: otel.Tracer(name)}
}

// start opens a span for rendering f.
func (t tracer) start(ctx context.Context, f *fixture.Fixture, reason string) (context.Context, trace.Span) {
	return t.t.Start(ctx, "renderprop.render "+f.Name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("renderprop.fixture", f.Name),
			attribute.String("renderprop.variant", f.Variant),
			attribute.String("renderprop.tag", f.Tag),
			attribute.String("renderprop.reason", reason),
		),
	)
}

// end records the render result on span and ends it.
func end(span trace.Span, err error, changed bool) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(attribute.Bool("renderprop.changed", changed))
	span.End()
}
