package planner

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/handlers"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

const (
	msgIDRequired   = "Planner item with id required"
	msgStoreFailure = "Failed to update planner"
)

type Handler struct {
	*handlers.BaseHandler
	service Service
	log     *zap.Logger
}

func NewHandler(service Service, log *zap.Logger) *Handler {
	return &Handler{
		BaseHandler: handlers.NewBaseHandler(log),
		service:     service,
		log:         log,
	}
}

// GetPlanner serves GET /planner.
func (h *Handler) GetPlanner(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load planner"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddToPlanner serves POST /planner.
func (h *Handler) AddToPlanner(c *gin.Context) {
	var entry models.PlannerEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.log.Debug("Invalid planner payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgIDRequired})
		return
	}

	entries, err := h.service.Add(c.Request.Context(), entry)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PlannerResponse{Message: "Added", Planner: entries})
}

// RemoveFromPlanner serves DELETE /planner/:id.
func (h *Handler) RemoveFromPlanner(c *gin.Context) {
	entries, err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PlannerResponse{Message: "Removed", Planner: entries})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrValidation) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgIDRequired})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msgStoreFailure})
}

// ShowPlannerPage renders /itinerary.
func (h *Handler) ShowPlannerPage(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load planner page", zap.Error(err))
	}
	h.RenderPage(c, "Planner - Mindful Miles", "Planner", PlannerPage(entries))
}

// AddFromCard handles the card button's HTMX POST /ui/planner.
func (h *Handler) AddFromCard(c *gin.Context) {
	entry := models.PlannerEntry{
		ID:       c.PostForm("id"),
		Name:     c.PostForm("name"),
		Location: c.PostForm("location"),
		Type:     c.PostForm("type"),
	}

	ctx := c.Request.Context()
	before, err := h.service.List(ctx)
	if err != nil {
		c.String(http.StatusInternalServerError, msgStoreFailure)
		return
	}
	planned := slices.ContainsFunc(before, func(e models.PlannerEntry) bool { return e.ID == entry.ID })

	if _, err := h.service.Add(ctx, entry); err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.String(http.StatusBadRequest, msgIDRequired)
			return
		}
		c.String(http.StatusInternalServerError, msgStoreFailure)
		return
	}
	h.Render(c, http.StatusOK, AddedButton(planned))
}

// RemoveFromList handles HTMX DELETE /ui/planner/:id and returns the refreshed list.
func (h *Handler) RemoveFromList(c *gin.Context) {
	entries, err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			c.String(http.StatusBadRequest, msgIDRequired)
			return
		}
		c.String(http.StatusInternalServerError, msgStoreFailure)
		return
	}
	h.Render(c, http.StatusOK, PlannerList(entries))
}
