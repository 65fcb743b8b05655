package experiences

import (
	"encoding/json"
	"strconv"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/mindful-miles/internal/app/components"
	"github.com/FACorreiaa/mindful-miles/internal/app/components/button"
	"github.com/FACorreiaa/mindful-miles/internal/app/domain/category"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

// ExploreView is what the explore page needs to render.
type ExploreView struct {
	City          string
	DisplayCity   string
	Filter        string
	Experiences   []models.Experience
	FallbackImage string
}

// MapURL links to the experience on Google Maps. Missing coordinates stay empty.
func MapURL(e models.Experience) string {
	return "https://www.google.com/maps/search/?api=1&query=" + coord(e.Lat) + "," + coord(e.Lon)
}

func coord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func ExplorePage(v ExploreView) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<section class="rounded-xl border border-lime-100 bg-stone-50 p-6 shadow-sm">`)
		if v.City == "" {
			h.Raw(`<h2 class="text-2xl font-bold text-slate-700">Find wellness experiences</h2>`)
			h.Raw(`<p class="mt-2 text-gray-600">Enter a city (e.g., Rishikesh) to search experiences.</p>`)
			h.Raw(`<form id="city-search" action="/explore" method="get" class="mt-4 flex gap-3"><input name="city" required placeholder="City" class="rounded-lg border px-3 py-2">`)
			h.Render(button.Button(button.Props{Type: button.TypeSubmit, Label: "Explore"}))
			h.Raw("</form></section>")
			return
		}

		h.Raw(`<div class="flex flex-col gap-3 md:flex-row md:items-center md:justify-between"><div>`)
		h.Raw(`<h2 class="text-2xl font-bold text-slate-700">Wellness experiences in `)
		h.Text(v.DisplayCity)
		h.Raw(`</h2><p class="text-sm text-gray-600">Filtered: `)
		h.Text(v.Filter)
		h.Raw("</p></div>")
		h.Render(filterForm(v.City, v.Filter))
		h.Raw("</div>")

		if len(v.Experiences) == 0 {
			h.Raw(`<p id="no-results" class="mt-6 text-gray-500">No experiences found for `)
			h.Text(v.DisplayCity)
			h.Raw(" with selected filter.</p>")
		}

		h.Raw(`<div id="experience-grid" class="mt-6 grid gap-6 md:grid-cols-2 lg:grid-cols-3">`)
		for _, e := range v.Experiences {
			h.Render(ExperienceCard(e, v.FallbackImage))
		}
		h.Raw("</div></section>")
	})
}

func filterForm(city, selected string) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<form id="category-filter" action="/explore" method="get" class="flex items-center gap-3">`)
		h.Raw(`<input type="hidden" name="city"`)
		h.Attr("value", city)
		h.Raw(`><select name="category" onchange="this.form.requestSubmit()" class="rounded-lg border border-gray-300 bg-white px-3 py-2 shadow-sm">`)
		for _, f := range category.Filters() {
			h.Raw("<option")
			h.Attr("value", f)
			if f == selected {
				h.Raw(" selected")
			}
			h.Raw(">")
			h.Text(f)
			h.Raw("</option>")
		}
		h.Raw("</select>")
		h.Render(button.Button(button.Props{Href: "/itinerary", Label: "Open Planner", Variant: button.VariantOutline}))
		h.Raw("</form>")
	})
}

// ExperienceCard renders one grid card with its planner and map actions.
func ExperienceCard(e models.Experience, fallbackImage string) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<article class="experience-card flex flex-col overflow-hidden rounded-2xl border border-lime-100 bg-white shadow-sm"`)
		h.Attr("data-id", e.ID)
		h.Attr("data-category", e.Category.String())
		h.Raw("><img")
		h.URLAttr("src", e.Image)
		h.Attr("alt", e.Name)
		h.Attr("onerror", "this.onerror=null;this.src='"+fallbackImage+"'")
		h.Raw(` class="h-48 w-full object-cover">`)

		h.Raw(`<div class="flex flex-grow flex-col p-5"><div class="flex items-start justify-between">`)
		h.Raw(`<span class="badge rounded-full bg-green-100 px-3 py-1 text-xs font-medium text-slate-700">`)
		h.Text(e.Category.String())
		h.Raw(`</span><span class="duration text-xs text-gray-500">`)
		h.Text(e.Duration)
		h.Raw(`</span></div><h3 class="mt-3 text-lg font-semibold text-slate-700">`)
		h.Text(e.Name)
		h.Raw(`</h3><p class="description mt-2 flex-grow text-sm text-gray-600">`)
		h.Text(e.Description)
		h.Raw(`</p><p class="benefits mt-2 text-sm font-medium text-emerald-600">Benefits: `)
		h.Text(e.Benefits)
		h.Raw(`</p><div class="mt-4 flex gap-3">`)

		entry := e.PlannerEntry()
		h.Render(button.Button(button.Props{
			Label: "Add to Planner",
			Attributes: components.Attrs{
				"hx-post":   "/ui/planner",
				"hx-vals":   plannerVals(entry),
				"hx-swap":   "outerHTML",
				"hx-target": "this",
			},
		}))
		h.Render(button.Button(button.Props{
			Label:   "Open Map",
			Href:    MapURL(e),
			Target:  "_blank",
			Variant: button.VariantOutline,
		}))
		h.Raw("</div></div></article>")
	})
}

func plannerVals(p models.PlannerEntry) string {
	b, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(b)
}
