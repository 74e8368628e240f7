package operations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// StageTracer wraps each run and step in a span
type StageTracer struct {
	tracer trace.Tracer
}

// NewStageTracer creates a StageTracer; a nil tracer disables tracing
func NewStageTracer(tracer trace.Tracer) *StageTracer {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &StageTracer{tracer: tracer}
}

// TraceRun starts the span covering a whole run
func (t *StageTracer) TraceRun(ctx context.Context, runID, inputPath string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "report.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("run.input", inputPath),
		),
	)
}

// TraceStep starts the span of one step
func (t *StageTracer) TraceStep(ctx context.Context, runID, stepID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "stage."+stepID,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("step.id", stepID),
		),
	)
}

// RecordResult sets the span status from err and ends the span
func (t *StageTracer) RecordResult(span trace.Span, err error, elapsed time.Duration) {
	span.SetAttributes(attribute.Float64("duration_seconds", elapsed.Seconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
