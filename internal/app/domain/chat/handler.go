package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/handlers"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
	"github.com/FACorreiaa/mindful-miles/internal/app/pages"
)

const (
	msgRequired    = "message required"
	msgUnavailable = "Sorry, chat service unavailable."
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

// Chat serves POST /chat.
func (h *Handler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, models.ChatResponse{Error: msgRequired})
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), req.Message)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ChatResponse{Error: msgRequired})
	case errors.Is(err, models.ErrChatNotConfigured):
		c.JSON(http.StatusInternalServerError, models.ChatResponse{Error: models.ErrChatNotConfigured.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ChatResponse{Error: models.ErrReplyUnavailable.Error()})
	}
}

// ChatFromWidget handles the widget's HTMX POST /ui/chat and returns the two new bubbles.
func (h *Handler) ChatFromWidget(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		c.Status(http.StatusNoContent)
		return
	}

	user := models.ChatMessage{From: models.ChatFromUser, Text: message}
	bot := models.ChatMessage{From: models.ChatFromBot}

	reply, err := h.service.Reply(c.Request.Context(), message)
	switch {
	case err == nil:
		bot.Text = reply
	case errors.Is(err, models.ErrChatNotConfigured):
		bot.Text = models.ErrChatNotConfigured.Error()
	default:
		bot.Text = msgUnavailable
	}

	if err := handlers.AppendChatTranscript(c, user, bot); err != nil {
		h.log.Warn("Failed to store chat transcript", zap.Error(err))
	}
	h.Render(c, http.StatusOK, pages.ChatBubbles(user, bot))
}
