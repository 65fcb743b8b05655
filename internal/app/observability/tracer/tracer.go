package tracer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const serviceVersion = "1.0.0"

// Options configures the global OpenTelemetry providers.
type Options struct {
	ServiceName string
	// MetricsAddr is where /metrics is served. Empty disables the endpoint.
	MetricsAddr string
	// OTLPEndpoint is the collector host:port. Empty keeps spans in-process.
	OTLPEndpoint string
	// StdoutTraces prints spans when no OTLP endpoint is set.
	StdoutTraces bool
	Logger       *zap.Logger
}

// InitOtelProviders installs the global tracer and meter providers and returns their shutdown function.
func InitOtelProviders(opts Options) (func(context.Context) error, error) {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(serviceVersion),
	)

	tp := newTracerProvider(res, opts, l)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	promExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(promExporter),
	)
	otel.SetMeterProvider(mp)

	var metricsServer *http.Server
	if opts.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{Addr: opts.MetricsAddr, Handler: mux}
		go func() {
			l.Info("Starting Prometheus metrics server", zap.String("addr", opts.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				l.Error("Metrics server stopped", zap.Error(err))
			}
		}()
	}

	return func(ctx context.Context) error {
		var errs []error
		if metricsServer != nil {
			if err := metricsServer.Shutdown(ctx); err != nil {
				errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
			}
		}
		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
		return errors.Join(errs...)
	}, nil
}

func newTracerProvider(res *resource.Resource, opts Options, l *zap.Logger) *sdktrace.TracerProvider {
	exporter, err := newSpanExporter(opts)
	if err != nil {
		l.Warn("Failed to create trace exporter, tracing without exporter", zap.Error(err))
		return sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	}
	if exporter == nil {
		l.Info("Tracing without exporter")
		return sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	}
	l.Info("Exporting traces", zap.String("otlp_endpoint", opts.OTLPEndpoint), zap.Bool("stdout", opts.OTLPEndpoint == ""))
	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
}

// newSpanExporter returns nil when neither OTLP nor stdout export is configured.
func newSpanExporter(opts Options) (sdktrace.SpanExporter, error) {
	switch {
	case opts.OTLPEndpoint != "":
		return otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(opts.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	case opts.StdoutTraces:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, nil
	}
}
