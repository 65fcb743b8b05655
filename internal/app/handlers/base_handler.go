package handlers

import (
	"encoding/json"

	"github.com/a-h/templ"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
	"github.com/FACorreiaa/mindful-miles/internal/app/pages"
)

const (
	chatSessionKey = "chat"
	// MaxChatMessages bounds the transcript kept in the session cookie.
	MaxChatMessages = 20
	// maxTranscriptBytes keeps the encoded cookie under the 4KB browser limit.
	maxTranscriptBytes = 2048
)

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) NewLayoutData(c *gin.Context, title, activeNav string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title,
		Content:   content,
		Nav:       models.MainNav,
		ActiveNav: activeNav,
		Chat:      ChatTranscript(c),
	}
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.Logger.Error("Failed to render component", zap.String("path", c.FullPath()), zap.Error(err))
	}
}

func (h *BaseHandler) RenderPage(c *gin.Context, title, activeNav string, content templ.Component) {
	// Always render the full layout with navbar
	// hx-boost will automatically swap the body content
	layoutData := h.NewLayoutData(c, title, activeNav, content)
	h.Render(c, 200, pages.LayoutPage(layoutData))
}

func (h *BaseHandler) ShowHomePage(c *gin.Context) {
	h.RenderPage(c, "Mindful Miles", "Home", pages.HomePage())
}

// ChatTranscript reads the chat messages kept in the session cookie.
// It returns nil when no session middleware is installed.
func ChatTranscript(c *gin.Context) []models.ChatMessage {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	raw, ok := sessions.Default(c).Get(chatSessionKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil
	}
	return msgs
}

// AppendChatTranscript stores msgs after the existing transcript, keeping only the newest
// messages that fit in the cookie.
func AppendChatTranscript(c *gin.Context, msgs ...models.ChatMessage) error {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	all := append(ChatTranscript(c), msgs...)
	if len(all) > MaxChatMessages {
		all = all[len(all)-MaxChatMessages:]
	}
	b, err := json.Marshal(all)
	for err == nil && len(b) > maxTranscriptBytes && len(all) > 0 {
		all = all[1:]
		b, err = json.Marshal(all)
	}
	if err != nil {
		return err
	}
	s := sessions.Default(c)
	s.Set(chatSessionKey, string(b))
	return s.Save()
}
