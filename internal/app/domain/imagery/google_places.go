package imagery

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/observability/metrics"
	"github.com/FACorreiaa/mindful-miles/internal/pkg/httpclient"
)

const googlePhotoMaxWidth = 1000

type findPlaceResponse struct {
	Candidates []struct {
		PlaceID string `json:"place_id"`
	} `json:"candidates"`
	Status string `json:"status"`
}

type placeDetailsResponse struct {
	Result struct {
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"result"`
	Status string `json:"status"`
}

// GooglePlacesProvider looks the POI up by name and returns its first photo.
type GooglePlacesProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewGooglePlacesProvider(apiKey, baseURL string, client *http.Client, logger *zap.Logger) *GooglePlacesProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GooglePlacesProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (p *GooglePlacesProvider) Name() string { return "google_places" }

func (p *GooglePlacesProvider) Find(ctx context.Context, q Query) (string, bool) {
	if p.apiKey == "" || strings.TrimSpace(q.Name) == "" {
		return "", false
	}
	l := p.logger.With(zap.String("provider", p.Name()), zap.String("name", q.Name), zap.String("city", q.City))

	placeID, err := p.findPlaceID(ctx, q.Name+" "+q.City)
	if err != nil {
		p.fail(ctx, l, "Google Places find failed", err)
		return "", false
	}
	if placeID == "" {
		return "", false
	}

	photoRef, err := p.firstPhotoReference(ctx, placeID)
	if err != nil {
		p.fail(ctx, l, "Google Places details failed", err)
		return "", false
	}
	if photoRef == "" {
		return "", false
	}

	return p.photoURL(photoRef), true
}

func (p *GooglePlacesProvider) findPlaceID(ctx context.Context, input string) (string, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("inputtype", "textquery")
	params.Set("fields", "place_id")
	params.Set("key", p.apiKey)

	var res findPlaceResponse
	if err := httpclient.GetJSON(ctx, p.client, p.baseURL+"/findplacefromtext/json?"+params.Encode(), &res); err != nil {
		return "", err
	}
	if len(res.Candidates) == 0 {
		return "", nil
	}
	return res.Candidates[0].PlaceID, nil
}

func (p *GooglePlacesProvider) firstPhotoReference(ctx context.Context, placeID string) (string, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "photo")
	params.Set("key", p.apiKey)

	var res placeDetailsResponse
	if err := httpclient.GetJSON(ctx, p.client, p.baseURL+"/details/json?"+params.Encode(), &res); err != nil {
		return "", err
	}
	if len(res.Result.Photos) == 0 {
		return "", nil
	}
	return res.Result.Photos[0].PhotoReference, nil
}

func (p *GooglePlacesProvider) photoURL(photoRef string) string {
	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(googlePhotoMaxWidth))
	params.Set("photoreference", photoRef)
	params.Set("key", p.apiKey)
	return p.baseURL + "/photo?" + params.Encode()
}

func (p *GooglePlacesProvider) fail(ctx context.Context, l *zap.Logger, msg string, err error) {
	l.Warn(msg, zap.Error(err))
	metrics.Get().UpstreamErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", p.Name())))
}
