package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal       metric.Int64Counter
	HTTPRequestDuration     metric.Float64Histogram
	ExperienceSearchesTotal metric.Int64Counter
	CuratedFallbacksTotal   metric.Int64Counter
	ImageResolutionsTotal   metric.Int64Counter
	PlannerOperationsTotal  metric.Int64Counter
	PlannerEntriesGauge     metric.Int64Gauge
	ChatRequestsTotal       metric.Int64Counter
	UpstreamErrorsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once from the global MeterProvider.
// Before InitOtelProviders runs the global provider is a no-op, which is what tests get.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("mindful-miles")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.ExperienceSearchesTotal, err = meter.Int64Counter(
			"experience_searches_total",
			metric.WithDescription("Total number of city experience searches"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create experience_searches_total: %v", err)
		}

		m.CuratedFallbacksTotal, err = meter.Int64Counter(
			"curated_fallbacks_total",
			metric.WithDescription("Searches answered with the curated fallback records"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create curated_fallbacks_total: %v", err)
		}

		m.ImageResolutionsTotal, err = meter.Int64Counter(
			"image_resolutions_total",
			metric.WithDescription("Resolved experience images by provider"),
			metric.WithUnit("{image}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create image_resolutions_total: %v", err)
		}

		m.PlannerOperationsTotal, err = meter.Int64Counter(
			"planner_operations_total",
			metric.WithDescription("Planner list/add/remove operations"),
			metric.WithUnit("{operation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create planner_operations_total: %v", err)
		}

		m.PlannerEntriesGauge, err = meter.Int64Gauge(
			"planner_entries_current",
			metric.WithDescription("Number of entries in the planner after the last mutation"),
			metric.WithUnit("{entry}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create planner_entries_current: %v", err)
		}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Chat proxy requests by outcome"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create chat_requests_total: %v", err)
		}

		m.UpstreamErrorsTotal, err = meter.Int64Counter(
			"upstream_errors_total",
			metric.WithDescription("Absorbed failures of third-party providers"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
