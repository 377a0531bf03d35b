// Package otel wires OpenTelemetry tracing for command entry points.
package otel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config controls trace export. It is parsed from DM_ASSISTANT_OTEL_*.
type Config struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"OTEL_ENDPOINT"`
}

// Active reports whether spans should be exported.
func (c Config) Active() bool {
	return c.Enabled && strings.TrimSpace(c.Endpoint) != ""
}

// Setup registers a global tracer provider for the given service.
//
// Tracing is opt-in: an empty endpoint or Enabled=false returns a no-op
// shutdown and leaves the global no-op provider in place.
func Setup(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
