package services

import "strings"

// Page keys used to highlight the current navigation entry.
const (
	PageHome     = "home"
	PageServices = "services"
	PageProjects = "projects"
	PageQuote    = "quote"
)

// NavLink is a main navigation entry.
type NavLink struct {
	Page   string
	Href   string
	Label  string
	Active bool
}

// MainNav is the site navigation in display order.
var MainNav = []NavLink{
	{Page: PageHome, Href: "/", Label: "Home"},
	{Page: PageServices, Href: "/services", Label: "Services"},
	{Page: PageProjects, Href: "/projects", Label: "Projects"},
	{Page: PageQuote, Href: "/quote", Label: "Get a quote"},
}

// NavLinks returns the main navigation with every link whose page key starts
// with currentPage marked active. An empty currentPage marks nothing.
func NavLinks(currentPage string) []NavLink {
	links := make([]NavLink, len(MainNav))
	for i, link := range MainNav {
		link.Active = currentPage != "" && strings.HasPrefix(link.Page, currentPage)
		links[i] = link
	}
	return links
}
