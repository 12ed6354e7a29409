package view

import "strings"

// Page identifies one of the mutually exclusive views the site can display.
type Page int

const (
	Home Page = iota
	Work
	About
	Contact
	Blog
	BlogSingle
	NotFound
)

var pageIDs = [...]string{
	Home:       "home",
	Work:       "work",
	About:      "about",
	Contact:    "contact",
	Blog:       "blog",
	BlogSingle: "blog-single",
	NotFound:   "not-found",
}

var pagePaths = [...]string{
	Home:       "/",
	Work:       "/work",
	About:      "/about",
	Contact:    "/contact",
	Blog:       "/blog",
	BlogSingle: "/blog",
	NotFound:   "/404",
}

// Pages returns every page in declaration order.
func Pages() []Page {
	return []Page{Home, Work, About, Contact, Blog, BlogSingle, NotFound}
}

// Valid reports whether p is a member of the page set.
func (p Page) Valid() bool {
	return p >= Home && p <= NotFound
}

// String returns the wire id of the page, e.g. "blog-single".
func (p Page) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return pageIDs[p]
}

// Path returns the URL path that renders the page. BlogSingle has no fixed
// path of its own and maps to the listing.
func (p Page) Path() string {
	if !p.Valid() {
		return "/"
	}
	return pagePaths[p]
}

// Parse resolves a wire id to a page. "404" is accepted as an alias of
// not-found.
func Parse(id string) (Page, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "404" {
		return NotFound, true
	}
	for i, s := range pageIDs {
		if s == id {
			return Page(i), true
		}
	}
	return 0, false
}

// NavItem is a labelled header link.
type NavItem struct {
	Label string
	Page  Page
}

// HeaderNav is the header navigation shown on every page.
var HeaderNav = []NavItem{
	{Label: "Work", Page: Work},
	{Label: "About", Page: About},
	{Label: "Blog", Page: Blog},
	{Label: "Contact", Page: Contact},
}

// FromLabel resolves a navigation label to its page. "Portfolio" is the
// footer name of the home page.
func FromLabel(label string) (Page, bool) {
	switch strings.TrimSpace(label) {
	case "Portfolio", "Home":
		return Home, true
	case "Work":
		return Work, true
	case "About":
		return About, true
	case "Contact":
		return Contact, true
	case "Blog":
		return Blog, true
	}
	return 0, false
}
