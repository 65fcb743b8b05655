package experiences

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/mindful-miles/internal/app/domain/category"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/imagery"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/spots"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
	"github.com/FACorreiaa/mindful-miles/internal/app/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

const (
	defaultName        = "Wellness Spot"
	defaultRawType     = "Wellness"
	defaultDescription = "A local wellness spot"
	defaultBenefits    = "Stress reduction, mindfulness, cultural immersion"
)

var durations = []string{"30 mins", "45 mins", "1 hour", "90 mins", "2 hours"}

// ImageResolver returns a displayable image URL; it never fails.
type ImageResolver interface {
	Resolve(ctx context.Context, q imagery.Query) string
}

type Service interface {
	BuildExperiences(ctx context.Context, city string) []models.Experience
}

type ServiceImpl struct {
	logger      *zap.Logger
	fetcher     spots.Fetcher
	classifier  *category.Classifier
	images      ImageResolver
	static      *imagery.StaticProvider
	concurrency int
}

// NewService wires the assembler. concurrency below 1 means sequential enrichment.
func NewService(fetcher spots.Fetcher, classifier *category.Classifier, images ImageResolver,
	static *imagery.StaticProvider, concurrency int, logger *zap.Logger) *ServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	if classifier == nil {
		classifier = category.NewClassifier(category.DefaultRules)
	}
	if static == nil {
		static = imagery.NewStaticProvider("")
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &ServiceImpl{
		logger:      logger,
		fetcher:     fetcher,
		classifier:  classifier,
		images:      images,
		static:      static,
		concurrency: concurrency,
	}
}

// BuildExperiences turns the city's raw spots into display records, in fetch order.
// When the fetcher has nothing the curated records are returned instead.
func (s *ServiceImpl) BuildExperiences(ctx context.Context, city string) []models.Experience {
	ctx, span := otel.Tracer("ExperiencesService").Start(ctx, "BuildExperiences", trace.WithAttributes(
		attribute.String("city", city),
		attribute.Int("enrich.concurrency", s.concurrency),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "BuildExperiences"), zap.String("city", city))
	m := metrics.Get()

	elements := s.fetcher.FetchSpots(ctx, city)
	if len(elements) == 0 {
		l.Info("No spots found, serving curated experiences")
		m.CuratedFallbacksTotal.Add(ctx, 1)
		m.ExperienceSearchesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", "curated")))
		span.SetAttributes(attribute.Bool("curated", true))
		span.SetStatus(codes.Ok, "Curated experiences")
		return Curated(city, s.static)
	}

	out := make([]models.Experience, len(elements))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, el := range elements {
		g.Go(func() error {
			out[i] = s.enrich(gctx, city, i, el)
			return nil
		})
	}
	// enrich absorbs every failure, Wait only synchronizes.
	_ = g.Wait()

	l.Info("Experiences assembled", zap.Int("count", len(out)))
	m.ExperienceSearchesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("source", "overpass")))
	span.SetAttributes(attribute.Int("experiences.count", len(out)))
	span.SetStatus(codes.Ok, "Experiences assembled")
	return out
}

func (s *ServiceImpl) enrich(ctx context.Context, city string, i int, el spots.Element) models.Experience {
	name := orDefault(el.Tag("name"), defaultName)
	rawType := orDefault(el.Tag("amenity", "leisure", "shop"), defaultRawType)
	cat := s.classifier.Classify(rawType)
	lat, lon := el.Coordinates()

	return models.Experience{
		ID:          "osm-" + el.Type + "-" + strconv.FormatInt(el.ID, 10),
		Name:        name,
		Type:        rawType,
		Category:    cat,
		Description: orDefault(el.Tag("description", "name:en"), defaultDescription),
		Benefits:    defaultBenefits,
		Duration:    durations[i%len(durations)],
		Image:       s.images.Resolve(ctx, imagery.Query{Name: name, Category: cat, City: city}),
		Lat:         lat,
		Lon:         lon,
		Location:    city,
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
