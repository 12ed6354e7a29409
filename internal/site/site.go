// Package site serves the portfolio pages. Every request resolves the
// visitor's session, applies one state transition and renders the active
// view from that session's state.
package site

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/content"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/telemetry"
	"github.com/hanssen-studio/portfolio/internal/view"
)

// Options configures a Site.
type Options struct {
	Meta     Meta
	Catalog  *content.Catalog
	Sessions *session.Store
	Outbox   contact.Outbox
	Logger   *zap.Logger
}

// Site renders pages for visitor sessions.
type Site struct {
	meta     Meta
	catalog  *content.Catalog
	sessions *session.Store
	outbox   contact.Outbox
	logger   *zap.Logger
	renderer *Renderer
	now      func() time.Time
}

// New builds a Site and compiles its templates.
func New(opts Options) (*Site, error) {
	if opts.Catalog == nil {
		return nil, errors.New("site: catalog is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("site: session store is required")
	}
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	outbox := opts.Outbox
	if outbox == nil {
		outbox = contact.NewLogOutbox(logger)
	}
	return &Site{
		meta:     opts.Meta,
		catalog:  opts.Catalog,
		sessions: opts.Sessions,
		outbox:   outbox,
		logger:   logger,
		renderer: renderer,
		now:      time.Now,
	}, nil
}

// visit navigates st to p unless the request is the redraw that follows a
// POST on the same view.
func visit(st *session.State, p view.Page) error {
	if st.TakeRedraw() && st.Router.Current() == p {
		return nil
	}
	return st.Router.Navigate(p)
}

// currentPath is the URL of st's active view.
func currentPath(st *session.State) string {
	if st.Router.Current() == view.BlogSingle {
		return link("/", view.BlogSingle.String(), st.PostSlug)
	}
	return st.Router.Current().Path()
}

// show applies transition to the visitor's state and renders the result.
func (s *Site) show(w http.ResponseWriter, r *http.Request, status int, transition func(*session.State) error) {
	st, _ := s.sessions.FromRequest(w, r)
	var (
		buf bytes.Buffer
		cur view.Page
	)
	err := st.Do(func(st *session.State) error {
		if err := transition(st); err != nil {
			return err
		}
		cur = st.Router.Current()
		return s.renderer.Render(&buf, s.compose(st, "/", false))
	})
	if err != nil {
		s.logger.Error("rendering page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	telemetry.Annotate(r.Context(), attribute.String("portfolio.view", cur.String()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// update applies fn to the visitor's state and redirects to target, or to
// the active view when target is empty.
func (s *Site) update(w http.ResponseWriter, r *http.Request, target string, fn func(*session.State)) {
	st, _ := s.sessions.FromRequest(w, r)
	_ = st.Do(func(st *session.State) error {
		fn(st)
		st.Redraw = true
		if target == "" {
			target = currentPath(st)
		}
		return nil
	})
	http.Redirect(w, r, target, http.StatusSeeOther)
}
