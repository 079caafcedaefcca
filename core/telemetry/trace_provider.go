package telemetry

import (
	"context"

	"github.com/sbalogh/rttr/core/config"
	"github.com/sbalogh/rttr/core/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstallTraceProvider installs and returns the global trace provider based on
// the http otlp exporter. Without an endpoint, or when the exporter cannot be
// built, a noop provider is installed.
func InstallTraceProvider(settings config.Telemetry, serviceName string) trace.TracerProvider {
	var tracerProvider trace.TracerProvider = noop.NewTracerProvider()

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	if len(settings.Endpoint) == 0 {
		return tracerProvider
	}

	if serviceName == "" {
		serviceName = settings.ServiceName
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(settings.Endpoint)}
	if settings.CACerts == "" {
		opts = append(opts, otlptracehttp.WithInsecure())
	} else {
		tlsConfig, err := getTLSConfig(settings.CACerts)
		if err != nil {
			logger.Logger().Errorf("telemetry: %v", err)
			return tracerProvider
		}
		opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsConfig))
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
	if err != nil {
		logger.Logger().Errorf("creating OTLP trace exporter: %v", err)
		return tracerProvider
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName)))
	if err != nil {
		logger.Logger().Errorf("creating resource: %v", err)
		return tracerProvider
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))

	return tracerProvider
}
