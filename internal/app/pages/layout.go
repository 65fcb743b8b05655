// Package pages renders the full-page shell and the pages that belong to no domain.
package pages

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/mindful-miles/internal/app/components"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

const (
	htmxScript     = "https://unpkg.com/htmx.org@2.0.3"
	tailwindScript = "https://cdn.tailwindcss.com"
)

// LayoutPage wraps page content with the header navigation and the chat widget.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw("<title>")
		h.Text(data.Title)
		h.Raw("</title>")
		h.Raw(`<link rel="stylesheet" href="/assets/css/app.css">`)
		h.Raw(`<script src="` + tailwindScript + `"></script>`)
		h.Raw(`<script src="` + htmxScript + `" defer></script>`)
		h.Raw(`</head><body class="bg-stone-50 text-gray-700" hx-boost="true">`)

		h.Render(header(data.Nav, data.ActiveNav))
		h.Raw(`<main id="content" class="mx-auto max-w-6xl px-6 py-8">`)
		h.Render(data.Content)
		h.Raw("</main>")
		h.Render(ChatWidget(data.Chat))

		h.Raw("</body></html>")
	})
}

func header(nav models.Navigation, active string) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<header class="sticky top-0 z-50 flex items-center justify-between border-b border-lime-100 bg-stone-50 px-7 py-3 shadow-sm">`)
		h.Raw(`<a href="/" class="flex items-center gap-3"><span class="flex h-10 w-10 items-center justify-center rounded-full bg-green-100 font-bold text-green-800">MM</span>`)
		h.Raw(`<span><span class="block text-xl font-semibold text-slate-700">Mindful Miles</span><span class="block text-sm text-gray-500">Discover wellness</span></span></a>`)
		h.Raw(`<nav><ul class="flex gap-3">`)
		for _, item := range nav.Items {
			class := "inline-block rounded-full bg-lime-50 px-4 py-2 font-medium shadow-sm hover:bg-lime-100"
			if item.Name == active {
				class += " ring-2 ring-green-300"
			}
			h.Raw("<li><a")
			h.URLAttr("href", item.URL)
			h.Attr("class", class)
			if item.Name == active {
				h.Attr("aria-current", "page")
			}
			h.Raw(">")
			h.Text(item.Name)
			h.Raw("</a></li>")
		}
		h.Raw("</ul></nav></header>")
	})
}
