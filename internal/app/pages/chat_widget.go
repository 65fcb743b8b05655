package pages

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/mindful-miles/internal/app/components"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

// ChatGreeting opens every transcript.
var ChatGreeting = models.ChatMessage{
	From: models.ChatFromBot,
	Text: "Hi, I am your Mindful Miles assistant. Ask me about wellness activities, planning tips, or cultural etiquette.",
}

// ChatWidget renders the collapsible assistant with the session transcript.
func ChatWidget(transcript []models.ChatMessage) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<aside id="chat-widget" class="fixed bottom-6 right-6 z-50 w-80">`)
		h.Raw(`<details class="rounded-2xl bg-white shadow-lg"><summary class="cursor-pointer rounded-t-2xl bg-emerald-600 px-4 py-3 font-semibold text-white">Mindful Miles Assistant</summary>`)
		h.Raw(`<div id="chat-messages" class="max-h-80 overflow-y-auto p-3">`)
		h.Render(ChatBubbles(append([]models.ChatMessage{ChatGreeting}, transcript...)...))
		h.Raw("</div>")
		h.Raw(`<form class="flex gap-2 border-t p-3" hx-post="/ui/chat" hx-target="#chat-messages" hx-swap="beforeend" hx-on::after-request="this.reset()">`)
		h.Raw(`<input name="message" required autocomplete="off" placeholder="Ask about wellness in a city..." class="flex-1 rounded-lg border px-3 py-2 text-sm">`)
		h.Raw(`<button type="submit" class="rounded-lg bg-emerald-600 px-3 py-2 text-sm text-white">Send</button>`)
		h.Raw("</form></details></aside>")
	})
}

// ChatBubbles renders messages; bot bubbles sit left, user bubbles right.
func ChatBubbles(messages ...models.ChatMessage) templ.Component {
	return components.Component(func(h *components.HTML) {
		for _, m := range messages {
			row, bubble := "flex flex-row-reverse mb-2", "max-w-60 rounded-lg bg-emerald-600 p-2 text-sm text-white"
			if m.From == models.ChatFromBot {
				row, bubble = "flex mb-2", "max-w-60 rounded-lg bg-slate-100 p-2 text-sm text-slate-800"
			}
			h.Raw("<div")
			h.Attr("class", row)
			h.Attr("data-from", string(m.From))
			h.Raw("><div")
			h.Attr("class", bubble)
			h.Raw(">")
			h.Text(m.Text)
			h.Raw("</div></div>")
		}
	})
}
