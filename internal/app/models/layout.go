package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

// LayoutTempl is everything the page shell needs around a page body.
type LayoutTempl struct {
	Title string
	Nav   Navigation
	// ActiveNav matches a NavItem.Name and is marked aria-current.
	ActiveNav string
	Content   templ.Component
	// Chat is the session-local transcript rendered inside the chat widget.
	Chat []ChatMessage
}

var MainNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: "/"},
		{Name: "Explore", URL: "/explore"},
		{Name: "Planner", URL: "/itinerary"},
	},
}
