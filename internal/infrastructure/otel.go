package infrastructure

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/rvlnatrn/Visualisasi-dan-Interpretasi-Data/internal/config"
)

// TracerName is the instrumentation scope of pipeline spans
const TracerName = "salesreport/operations"

// Tracing holds the tracer used for stage spans and the provider to flush
type Tracing struct {
	Tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// InitTracing builds the tracer selected by cfg.TraceExporter.
// "none" yields a no-op tracer; "stdout" writes finished spans to w.
func InitTracing(cfg config.TelemetryConfig, w io.Writer) (*Tracing, error) {
	switch cfg.TraceExporter {
	case "", "none":
		return &Tracing{Tracer: noop.NewTracerProvider().Tracer(TracerName)}, nil
	case "stdout":
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.ServiceName),
		semconv.ServiceVersion(config.AppVersion),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return &Tracing{
		Tracer:   tp.Tracer(TracerName, trace.WithInstrumentationVersion(config.AppVersion)),
		provider: tp,
	}, nil
}

// Shutdown flushes pending spans. It is a no-op for the "none" exporter.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
