package spots

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/observability/metrics"
	"github.com/FACorreiaa/mindful-miles/internal/pkg/httpclient"
)

var _ Fetcher = (*OverpassClient)(nil)

const (
	resultLimit     = 50
	wellnessPattern = "yoga|ashram|meditation|ayurveda|spa"
)

var wellnessSelectors = []string{
	`["leisure"="park"]`,
	`["amenity"="spa"]`,
	`["healthcare"="clinic"]`,
	`["leisure"="fitness_centre"]`,
	`["name"~"` + wellnessPattern + `",i]`,
}

type overpassResponse struct {
	Elements []Element `json:"elements"`
}

type OverpassClient struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

func NewOverpassClient(endpoint string, client *http.Client, logger *zap.Logger) *OverpassClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OverpassClient{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

// BuildQuery renders the Overpass QL for wellness spots inside the administrative area named city.
func BuildQuery(city string) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n")
	fmt.Fprintf(&b, "area[\"name\"=\"%s\"][\"boundary\"=\"administrative\"]->.searchArea;\n", escapeQL(city))
	b.WriteString("(\n")
	for _, sel := range wellnessSelectors {
		fmt.Fprintf(&b, "  nwr%s(area.searchArea);\n", sel)
	}
	b.WriteString(");\n")
	fmt.Fprintf(&b, "out center %d;\n", resultLimit)
	return b.String()
}

func escapeQL(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", " ").Replace(strings.TrimSpace(s))
}

// FetchSpots absorbs every failure into an empty list.
func (c *OverpassClient) FetchSpots(ctx context.Context, city string) []Element {
	ctx, span := otel.Tracer("OverpassClient").Start(ctx, "FetchSpots", trace.WithAttributes(
		attribute.String("city", city),
	))
	defer span.End()

	l := c.logger.With(zap.String("method", "FetchSpots"), zap.String("city", city))

	if strings.TrimSpace(city) == "" {
		return []Element{}
	}

	params := url.Values{}
	params.Set("data", BuildQuery(city))

	var res overpassResponse
	if err := httpclient.GetJSON(ctx, c.client, c.endpoint+"?"+params.Encode(), &res); err != nil {
		l.Error("Overpass query failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Overpass query failed")
		metrics.Get().UpstreamErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", "overpass")))
		return []Element{}
	}

	if res.Elements == nil {
		res.Elements = []Element{}
	}
	l.Info("Fetched wellness spots", zap.Int("count", len(res.Elements)))
	span.SetAttributes(attribute.Int("spots.count", len(res.Elements)))
	span.SetStatus(codes.Ok, "Spots fetched")
	return res.Elements
}
