// Package tracing installs the OpenTelemetry SDK tracer provider.
package tracing

import (
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"egid/internal/platform/config"
)

// ServiceName identifies this process in exported spans.
const ServiceName = "egid"

// NewProvider builds a tracer provider for the configured exporter. The
// stdout exporter writes spans to w. Callers own Shutdown.
func NewProvider(cfg config.Server, w io.Writer) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
	}

	switch cfg.TraceExporter {
	case config.TraceExporterStdout:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	case config.TraceExporterNone, "":
	default:
		return nil, fmt.Errorf("unsupported trace exporter %q", cfg.TraceExporter)
	}

	return sdktrace.NewTracerProvider(opts...), nil
}

// Install builds a provider and registers it as the global one.
func Install(cfg config.Server, w io.Writer) (*sdktrace.TracerProvider, error) {
	tp, err := NewProvider(cfg, w)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp, nil
}
