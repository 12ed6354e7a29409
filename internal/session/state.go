// Package session holds the per-visitor UI state: the page router, the
// theme controller and its root class marker, the hero carousel and the
// pending contact form. Each visitor is isolated and every transition on a
// State runs under that State's lock.
package session

import (
	"sync"
	"time"

	"github.com/hanssen-studio/portfolio/internal/carousel"
	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/theme"
	"github.com/hanssen-studio/portfolio/internal/view"
)

// State is one visitor's UI state.
type State struct {
	ID string

	Router *view.Router
	Theme  *theme.Controller
	Root   *theme.ClassList
	Hero   *carousel.Carousel

	// ActiveWork is the highlighted item of the work index.
	ActiveWork int

	// Form holds the contact form fields as last submitted.
	Form contact.Form

	// Notice is a one-shot message shown on the next render.
	Notice string

	// PostSlug is the post shown by the blog-single view.
	PostSlug string

	// Redraw marks the next page load as a re-render of the current view
	// after a POST, not a navigation, so the scroll offset survives it.
	Redraw bool

	mu       sync.Mutex
	lastSeen time.Time
}

// Defaults configures new sessions.
type Defaults struct {
	Theme      theme.Preference
	Slides     []string
	SlideStart int
}

func newState(id string, d Defaults, now time.Time) (*State, error) {
	hero, err := carousel.New(d.Slides, d.SlideStart)
	if err != nil {
		return nil, err
	}
	root := theme.NewClassList()
	return &State{
		ID:       id,
		Router:   view.NewRouter(),
		Theme:    theme.NewController(d.Theme, root),
		Root:     root,
		Hero:     hero,
		lastSeen: now,
	}, nil
}

// Do runs fn while holding the state lock, so a transition and the render
// that reads it observe the same state.
func (s *State) Do(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// TakeNotice returns the pending notice and clears it. Callers must hold
// the lock, i.e. call it from within Do.
func (s *State) TakeNotice() string {
	n := s.Notice
	s.Notice = ""
	return n
}

// TakeRedraw reports and clears the redraw mark. Callers must hold the lock.
func (s *State) TakeRedraw() bool {
	r := s.Redraw
	s.Redraw = false
	return r
}
