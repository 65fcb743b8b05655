package planner

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/mindful-miles/internal/app/components"
	"github.com/FACorreiaa/mindful-miles/internal/app/components/button"
	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

func PlannerPage(entries []models.PlannerEntry) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<section class="itinerary p-6"><h2 class="text-2xl font-bold">Your Wellness Planner</h2>`)
		h.Raw(`<p class="text-sm text-gray-600">Simple itinerary of your selected experiences</p>`)
		h.Render(PlannerList(entries))
		h.Raw("</section>")
	})
}

// PlannerList is the fragment swapped after every removal.
func PlannerList(entries []models.PlannerEntry) templ.Component {
	return components.Component(func(h *components.HTML) {
		h.Raw(`<div id="planner-list">`)
		if len(entries) == 0 {
			h.Raw(`<p class="empty mt-4 text-gray-500">No experiences added yet.</p></div>`)
			return
		}
		h.Raw(`<ul class="mt-6 space-y-4">`)
		for _, e := range entries {
			h.Raw(`<li class="planner-entry flex justify-between rounded-lg bg-white p-4 shadow"`)
			h.Attr("data-id", e.ID)
			h.Raw(`><div><h3 class="text-lg font-semibold">`)
			h.Text(e.Name)
			h.Raw(`</h3><p class="text-sm text-gray-600">`)
			h.Text(e.Location)
			if e.Type != "" {
				h.Raw(` <span class="text-xs text-emerald-700">`)
				h.Text(e.Type)
				h.Raw("</span>")
			}
			h.Raw("</p></div>")
			h.Render(button.Button(button.Props{
				Label:   "Remove",
				Variant: button.VariantDestructive,
				Size:    button.SizeSm,
				Attributes: components.Attrs{
					"hx-delete": "/ui/planner/" + url.PathEscape(e.ID),
					"hx-target": "#planner-list",
					"hx-swap":   "outerHTML",
				},
			}))
			h.Raw("</li>")
		}
		h.Raw("</ul></div>")
	})
}

// AddedButton replaces a card's add button once the entry is planned.
func AddedButton(alreadyPlanned bool) templ.Component {
	label := "Added to Planner"
	if alreadyPlanned {
		label = "Already in Planner"
	}
	return button.Button(button.Props{Label: label, Disabled: true, Variant: button.VariantOutline})
}
