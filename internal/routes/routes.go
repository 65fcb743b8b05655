package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/domain/category"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/chat"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/experiences"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/imagery"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/planner"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/spots"
	"github.com/FACorreiaa/mindful-miles/internal/app/handlers"
	"github.com/FACorreiaa/mindful-miles/internal/pkg/config"
	"github.com/FACorreiaa/mindful-miles/internal/pkg/httpclient"
)

type AppHandlers struct {
	Base        *handlers.BaseHandler
	Experiences *experiences.Handler
	Planner     *planner.Handler
	Chat        *chat.Handler
}

// NewAppHandlers builds every provider, store and service from configuration.
// dbPool is only used when the planner store is Postgres.
func NewAppHandlers(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*AppHandlers, error) {
	providersClient := httpclient.New(0)

	static := imagery.NewStaticProvider(cfg.PublicURLBase)
	resolver := imagery.NewResolver(logger, static,
		imagery.NewGooglePlacesProvider(cfg.Providers.GooglePlaces.APIKey, cfg.Providers.GooglePlaces.BaseURL, providersClient, logger),
		imagery.NewPixabayProvider(cfg.Providers.Pixabay.APIKey, cfg.Providers.Pixabay.BaseURL, cfg.ImageCountry,
			imagery.NewRand(cfg.Providers.Pixabay.Seed), providersClient, logger),
	)
	fetcher := spots.NewOverpassClient(cfg.Providers.Overpass.URL, httpclient.New(cfg.Providers.Overpass.Timeout), logger)
	experiencesService := experiences.NewService(fetcher, category.NewClassifier(category.DefaultRules), resolver, static,
		cfg.EnrichConcurrency, logger)

	var repo planner.Repository
	switch cfg.Planner.Store {
	case config.PlannerStorePostgres:
		if dbPool == nil {
			return nil, fmt.Errorf("planner store %q needs a database pool", cfg.Planner.Store)
		}
		repo = planner.NewPostgresRepository(dbPool, logger)
	default:
		repo = planner.NewFileRepository(cfg.Planner.FilePath, logger)
	}

	var generator chat.Generator
	if cfg.Providers.Gemini.APIKey != "" {
		g, err := chat.NewGeminiGenerator(ctx, cfg.Providers.Gemini.APIKey, cfg.Providers.Gemini.Model, httpclient.New(0))
		if err != nil {
			return nil, fmt.Errorf("failed to create chat generator: %w", err)
		}
		generator = g
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat replies will report misconfiguration")
	}

	return &AppHandlers{
		Base:        handlers.NewBaseHandler(logger),
		Experiences: experiences.NewHandler(experiencesService, static, logger),
		Planner:     planner.NewHandler(planner.NewService(repo, logger), logger),
		Chat:        chat.NewHandler(chat.NewService(generator, logger), logger),
	}, nil
}

// Setup registers the JSON API, the pages and their HTMX fragments.
func Setup(r *gin.Engine, h *AppHandlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// JSON API
	r.GET("/experiences/:city", h.Experiences.GetExperiences)
	r.GET("/planner", h.Planner.GetPlanner)
	r.POST("/planner", h.Planner.AddToPlanner)
	r.DELETE("/planner/:id", h.Planner.RemoveFromPlanner)
	r.POST("/chat", h.Chat.Chat)

	// Pages
	r.GET("/", h.Base.ShowHomePage)
	r.GET("/explore", h.Experiences.ShowExplorePage)
	r.GET("/itinerary", h.Planner.ShowPlannerPage)

	// HTMX fragments
	ui := r.Group("/ui")
	{
		ui.POST("/planner", h.Planner.AddFromCard)
		ui.DELETE("/planner/:id", h.Planner.RemoveFromList)
		ui.POST("/chat", h.Chat.ChatFromWidget)
	}
}
