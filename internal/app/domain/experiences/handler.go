package experiences

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/mindful-miles/internal/app/domain/imagery"
	"github.com/FACorreiaa/mindful-miles/internal/app/handlers"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

type Handler struct {
	*handlers.BaseHandler
	service Service
	static  *imagery.StaticProvider
	log     *zap.Logger
}

func NewHandler(service Service, static *imagery.StaticProvider, log *zap.Logger) *Handler {
	if static == nil {
		static = imagery.NewStaticProvider("")
	}
	return &Handler{
		BaseHandler: handlers.NewBaseHandler(log),
		service:     service,
		static:      static,
		log:         log,
	}
}

// DisplayCity title-cases a city name for headings.
func DisplayCity(city string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(city))
}

// GetExperiences serves GET /experiences/:city.
func (h *Handler) GetExperiences(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "City required"})
		return
	}

	c.JSON(http.StatusOK, h.service.BuildExperiences(c.Request.Context(), city))
}

// ShowExplorePage renders the card grid for ?city=&category=.
func (h *Handler) ShowExplorePage(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	filter := models.CategoryAll
	if f := strings.TrimSpace(c.Query("category")); f != "" {
		filter = f
	}

	view := ExploreView{
		City:          city,
		DisplayCity:   DisplayCity(city),
		Filter:        filter,
		FallbackImage: h.static.DefaultURL(),
	}
	title := "Explore - Mindful Miles"
	if city != "" {
		view.Experiences = FilterByCategory(h.service.BuildExperiences(c.Request.Context(), city), filter)
		title = view.DisplayCity + " - Mindful Miles"
		h.log.Debug("Rendering explore page",
			zap.String("city", city),
			zap.String("filter", filter),
			zap.Int("count", len(view.Experiences)))
	}

	h.RenderPage(c, title, "Explore", ExplorePage(view))
}
