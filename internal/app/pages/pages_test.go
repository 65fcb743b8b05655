package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestLayoutPage(t *testing.T) {
	doc := renderDoc(t, LayoutPage(models.LayoutTempl{
		Title:     "Planner - Mindful Miles",
		Nav:       models.MainNav,
		ActiveNav: "Planner",
		Content:   templ.Raw(`<p id="inner">hello</p>`),
		Chat: []models.ChatMessage{
			{From: models.ChatFromUser, Text: "Best time for yoga?"},
			{From: models.ChatFromBot, Text: "Sunrise."},
		},
	}))

	assert.Equal(t, "Planner - Mindful Miles", doc.Find("title").Text())
	assert.Equal(t, "hello", doc.Find("main #inner").Text())

	links := doc.Find("header nav a")
	assert.Equal(t, 3, links.Length())
	active := doc.Find(`header nav a[aria-current="page"]`)
	assert.Equal(t, "Planner", active.Text())
	href, _ := active.Attr("href")
	assert.Equal(t, "/itinerary", href)

	assert.Equal(t, 1, doc.Find(`script[src*="htmx"]`).Length())

	bubbles := doc.Find("#chat-messages > div")
	require.Equal(t, 3, bubbles.Length())
	from, _ := bubbles.First().Attr("data-from")
	assert.Equal(t, "bot", from)
	assert.Equal(t, ChatGreeting.Text, bubbles.First().Text())
	assert.Equal(t, "Best time for yoga?", bubbles.Eq(1).Text())

	form := doc.Find("#chat-widget form")
	post, _ := form.Attr("hx-post")
	assert.Equal(t, "/ui/chat", post)
}

func TestChatBubbles_Escapes(t *testing.T) {
	doc := renderDoc(t, ChatBubbles(models.ChatMessage{From: models.ChatFromUser, Text: "<img src=x onerror=alert(1)>"}))

	assert.Equal(t, 0, doc.Find("img").Length())
	assert.Equal(t, "<img src=x onerror=alert(1)>", doc.Find("div[data-from=user]").Text())
}

func TestHomePage(t *testing.T) {
	doc := renderDoc(t, HomePage())

	form := doc.Find("form#city-search")
	action, _ := form.Attr("action")
	assert.Equal(t, "/explore", action)
	assert.Equal(t, 1, form.Find(`input[name="city"]`).Length())
	assert.Equal(t, "Explore", form.Find(`button[type="submit"]`).Text())
	assert.Equal(t, 3, doc.Find(".highlight").Length())
}
