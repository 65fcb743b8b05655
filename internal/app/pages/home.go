package pages

import (
	"github.com/a-h/templ"

	"github.com/FACorreiaa/mindful-miles/internal/app/components"
	"github.com/FACorreiaa/mindful-miles/internal/app/components/button"
)

var highlights = []struct{ title, body string }{
	{"Local Wellness", "Discover yoga traditions, meditation retreats, and herbal therapies deeply rooted in local culture."},
	{"Mindful Living", "Join cooking classes, eat fresh, and embrace the healthy lifestyle of the community you visit."},
	{"Immersive Travel", "Go beyond sightseeing. Recharge your body and mind while connecting with nature and traditions."},
}

// HomePage is the landing page with the city search form.
func HomePage() templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<section class="py-16 text-center">`)
		h.Raw(`<h1 class="text-4xl font-extrabold leading-tight text-slate-700 md:text-6xl">Travel with Intention.<br>Rejuvenate with Culture.</h1>`)
		h.Raw(`<p class="mt-4 text-lg text-gray-700">Mindful Miles curates authentic wellness experiences, from riverside yoga to ayurvedic retreats and mindful cooking classes.</p>`)
		h.Raw(`<form id="city-search" action="/explore" method="get" class="mt-8 flex flex-col justify-center gap-3 sm:flex-row">`)
		h.Raw(`<input name="city" required placeholder="Enter city (e.g., Rishikesh, Kochi)" class="w-full rounded-lg border border-gray-300 bg-white px-4 py-3 sm:w-80">`)
		h.Render(button.Button(button.Props{Type: button.TypeSubmit, Label: "Explore", Size: button.SizeLg}))
		h.Render(button.Button(button.Props{Href: "/itinerary", Label: "View Planner", Variant: button.VariantOutline, Size: button.SizeLg}))
		h.Raw("</form></section>")

		h.Raw(`<section class="py-12"><h2 class="mb-12 text-center text-3xl font-bold text-slate-700">What Makes Mindful Miles Special?</h2>`)
		h.Raw(`<div class="grid gap-8 md:grid-cols-3">`)
		for _, hl := range highlights {
			h.Raw(`<div class="highlight rounded-2xl border border-lime-100 bg-white p-6 shadow-sm"><h3 class="mb-3 text-xl font-semibold text-green-800">`)
			h.Text(hl.title)
			h.Raw(`</h3><p class="text-gray-600">`)
			h.Text(hl.body)
			h.Raw("</p></div>")
		}
		h.Raw("</div></section>")
	})
}
