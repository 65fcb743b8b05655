package imagery

import (
	"context"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/observability/metrics"
	"github.com/FACorreiaa/mindful-miles/internal/pkg/httpclient"
)

const pixabayPageSize = 20

type pixabayResponse struct {
	Total int `json:"total"`
	Hits  []struct {
		WebformatURL string `json:"webformatURL"`
	} `json:"hits"`
}

// PixabayProvider searches stock photos by category and city and returns a random hit.
type PixabayProvider struct {
	apiKey  string
	baseURL string
	country string
	client  *http.Client
	logger  *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRand seeds a source for the random pick; seed 0 uses the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func NewPixabayProvider(apiKey, baseURL, country string, rnd *rand.Rand, client *http.Client, logger *zap.Logger) *PixabayProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rnd == nil {
		rnd = NewRand(0)
	}
	return &PixabayProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		country: country,
		client:  client,
		logger:  logger,
		rnd:     rnd,
	}
}

func (p *PixabayProvider) Name() string { return "pixabay" }

func (p *PixabayProvider) Find(ctx context.Context, q Query) (string, bool) {
	if p.apiKey == "" {
		return "", false
	}

	term := strings.Join(strings.Fields(strings.Join([]string{q.Category.String(), q.City, p.country}, " ")), " ")
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", term)
	params.Set("image_type", "photo")
	params.Set("per_page", strconv.Itoa(pixabayPageSize))
	params.Set("safesearch", "true")

	var res pixabayResponse
	if err := httpclient.GetJSON(ctx, p.client, p.baseURL+"?"+params.Encode(), &res); err != nil {
		p.logger.Warn("Pixabay search failed", zap.String("query", term), zap.Error(err))
		metrics.Get().UpstreamErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", p.Name())))
		return "", false
	}
	if len(res.Hits) == 0 {
		return "", false
	}

	hit := res.Hits[p.pick(len(res.Hits))]
	if hit.WebformatURL == "" {
		return "", false
	}
	return hit.WebformatURL, true
}

func (p *PixabayProvider) pick(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}
