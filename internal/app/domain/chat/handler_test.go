package chat

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(gen Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))
	h := NewHandler(NewService(gen, zap.NewNop()), zap.NewNop())
	r.POST("/chat", h.Chat)
	r.POST("/ui/chat", h.ChatFromWidget)
	return r
}

func postJSON(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	t.Run("reply", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", mock.Anything, "hi").Return("Namaste!", nil)

		w := postJSON(setupRouter(gen), `{"message":"hi"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"reply":"Namaste!"}`, w.Body.String())
	})

	t.Run("missing message", func(t *testing.T) {
		gen := new(MockGenerator)
		r := setupRouter(gen)

		for _, body := range []string{`{}`, `{"message":""}`, `not json`} {
			w := postJSON(r, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"message required"}`, w.Body.String())
		}
		gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("unconfigured", func(t *testing.T) {
		w := postJSON(setupRouter(nil), `{"message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"GEMINI_API_KEY not set. Chat requires a Gemini API key"}`, w.Body.String())
	})

	t.Run("provider failure", func(t *testing.T) {
		gen := new(MockGenerator)
		gen.On("Generate", mock.Anything, "hi").Return("", errors.New("503 from upstream"))

		w := postJSON(setupRouter(gen), `{"message":"hi"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to fetch Gemini response"}`, w.Body.String())
	})
}

func TestChatFromWidget(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, "best ashram?").Return("Try Parmarth Niketan.", nil)
	gen.On("Generate", mock.Anything, "and food?").Return("", errors.New("timeout"))
	r := setupRouter(gen)

	post := func(msg string, cookies []*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/ui/chat", strings.NewReader(url.Values{"message": {msg}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("best ashram?", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, "best ashram?", doc.Find("div[data-from=user]").Text())
	assert.Equal(t, "Try Parmarth Niketan.", doc.Find("div[data-from=bot]").Text())
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w = post("and food?", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sorry, chat service unavailable.")

	w = post("   ", cookies)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestChatFromWidget_Unconfigured(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/ui/chat", strings.NewReader("message=hello"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	setupRouter(nil).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "GEMINI_API_KEY not set")
}
