package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/view"
)

// RegisterRoutes mounts the page, action and state endpoints on r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/static/site.css", asset("text/css; charset=utf-8", cssContent))
	r.Get("/static/site.js", asset("text/javascript; charset=utf-8", pageScript))

	r.Get("/", s.handlePage(view.Home))
	r.Get("/work", s.handleWork)
	r.Get("/about", s.handlePage(view.About))
	r.Get("/contact", s.handlePage(view.Contact))
	r.Get("/blog", s.handlePage(view.Blog))
	r.Get("/blog/", s.handlePost)
	r.Get("/blog/{slug}", s.handlePost)
	r.Get("/404", s.handlePage(view.NotFound))

	r.Post("/navigate", s.handleNavigate)
	r.Post("/theme", s.handleTheme)
	r.Post("/carousel/next", s.handleCarouselStep(true))
	r.Post("/carousel/prev", s.handleCarouselStep(false))
	r.Post("/carousel/{index}", s.handleCarouselSelect)
	r.Post("/contact", s.handleContact)
	r.Post("/scroll", s.handleScroll)

	r.Get("/api/state", s.handleState)

	r.NotFound(s.handleNotFound)
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write([]byte(body))
	}
}

func (s *Site) handlePage(p view.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.show(w, r, http.StatusOK, func(st *session.State) error {
			return visit(st, p)
		})
	}
}

func (s *Site) handleWork(w http.ResponseWriter, r *http.Request) {
	item, hasItem := -1, false
	if v := r.URL.Query().Get("item"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			item, hasItem = n, true
		}
	}
	s.show(w, r, http.StatusOK, func(st *session.State) error {
		if hasItem {
			st.ActiveWork = item
		}
		return visit(st, view.Work)
	})
}

func (s *Site) handlePost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	s.show(w, r, http.StatusOK, func(st *session.State) error {
		if st.PostSlug != slug {
			st.PostSlug = slug
			st.Redraw = false
		}
		return visit(st, view.BlogSingle)
	})
}

func (s *Site) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.show(w, r, http.StatusNotFound, func(st *session.State) error {
		st.Redraw = false
		return st.Router.Navigate(view.NotFound)
	})
}

func (s *Site) handleNavigate(w http.ResponseWriter, r *http.Request) {
	to := r.PostFormValue("to")
	if to == "" {
		if p, ok := view.FromLabel(r.PostFormValue("label")); ok {
			to = p.String()
		}
	}
	s.update(w, r, "", func(st *session.State) {
		if err := st.Router.NavigateTo(to); err != nil {
			s.logger.Debug("ignoring navigation", zap.String("to", to), zap.Error(err))
		}
	})
}

func (s *Site) handleTheme(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, "", func(st *session.State) {
		st.Theme.Toggle()
	})
}

func (s *Site) handleCarouselStep(forward bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.update(w, r, view.Home.Path(), func(st *session.State) {
			if forward {
				st.Hero.Next()
			} else {
				st.Hero.Prev()
			}
		})
	}
}

func (s *Site) handleCarouselSelect(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	s.update(w, r, view.Home.Path(), func(st *session.State) {
		i, err := strconv.Atoi(raw)
		if err == nil {
			err = st.Hero.Select(i)
		}
		if err != nil {
			s.logger.Debug("ignoring slide selection", zap.String("index", raw), zap.Error(err))
		}
	})
}

func (s *Site) handleContact(w http.ResponseWriter, r *http.Request) {
	form := contact.Form{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
	sub, err := contact.Submit(r.Context(), s.outbox, form)

	var verr *contact.ValidationError
	s.update(w, r, view.Contact.Path(), func(st *session.State) {
		switch {
		case err == nil:
			st.Form = contact.Form{}
			st.Notice = contact.Acknowledgment
			s.logger.Debug("contact form accepted", zap.String("id", sub.ID))
		case errors.As(err, &verr):
			st.Form = form.Sanitized()
			st.Notice = verr.Error()
		default:
			s.logger.Error("submitting contact form", zap.Error(err))
			st.Form = form.Sanitized()
			st.Notice = "Your message could not be sent. Please try again."
		}
	})
}

func (s *Site) handleScroll(w http.ResponseWriter, r *http.Request) {
	y, err := strconv.Atoi(r.PostFormValue("y"))
	if err != nil {
		http.Error(w, "y must be an integer", http.StatusBadRequest)
		return
	}
	st, _ := s.sessions.FromRequest(w, r)
	_ = st.Do(func(st *session.State) error {
		// A scroll report comes from a loaded page, so any pending redraw
		// has been rendered or abandoned.
		st.Redraw = false
		st.Router.ScrollTo(y)
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

type stateResponse struct {
	View    string `json:"view"`
	Theme   string `json:"theme"`
	Marker  string `json:"marker"`
	ScrollY int    `json:"scroll_y"`
	Slide   int    `json:"slide"`
}

func (s *Site) handleState(w http.ResponseWriter, r *http.Request) {
	st, _ := s.sessions.FromRequest(w, r)
	var resp stateResponse
	_ = st.Do(func(st *session.State) error {
		resp = stateResponse{
			View:    st.Router.Current().String(),
			Theme:   st.Theme.Preference().String(),
			Marker:  st.Root.String(),
			ScrollY: st.Router.ScrollY(),
			Slide:   st.Hero.Index(),
		}
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
