// Package tracing configures OpenTelemetry to export spans to Jaeger.
package tracing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fairfinder/fair-finder/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// New registers a global tracer provider exporting to the configured Jaeger collector. The returned
// function flushes and stops the exporter. Nothing is registered when tracing is disabled.
func New(logger *slog.Logger, c config.Tracing) (func(context.Context) error, error) {
	if !c.Enabled() {
		logger.Info("Tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(c.JaegerEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("failed to create jaeger exporter: %v", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", c.ServiceName),
		)),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	logger.Info("Tracing enabled", "endpoint", c.JaegerEndpoint, "service", c.ServiceName)
	return provider.Shutdown, nil
}
