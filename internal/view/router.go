package view

import (
	"errors"
	"fmt"
)

// ErrInvalidRoute is returned when navigation names an id outside the page set.
var ErrInvalidRoute = errors.New("invalid route")

// Router tracks which page is displayed and the viewport scroll offset.
// The zero value starts on Home at the top of the page.
type Router struct {
	current Page
	scrollY int
}

// NewRouter returns a router positioned on Home.
func NewRouter() *Router {
	return &Router{current: Home}
}

// Current returns the active page.
func (r *Router) Current() Page { return r.current }

// ScrollY returns the last known vertical scroll offset.
func (r *Router) ScrollY() int { return r.scrollY }

// ScrollTo records the viewport's vertical offset.
func (r *Router) ScrollTo(y int) {
	if y < 0 {
		y = 0
	}
	r.scrollY = y
}

// Navigate makes p the active page and scrolls back to the top. Navigating
// to the current page still resets the scroll position.
func (r *Router) Navigate(p Page) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRoute, int(p))
	}
	r.current = p
	r.scrollY = 0
	return nil
}

// NavigateTo navigates by wire id. Unknown ids leave the router untouched.
func (r *Router) NavigateTo(id string) error {
	p, ok := Parse(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRoute, id)
	}
	return r.Navigate(p)
}
