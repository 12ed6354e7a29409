package site

import (
	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/content"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/view"
)

// Meta is the site identity shown in titles and the header.
type Meta struct {
	Name        string
	Title       string
	Description string
}

type navLink struct {
	Label  string
	Href   string
	Active bool
}

type heroData struct {
	Slides  []string
	Index   int
	Current string
}

// PageData is everything a page template reads. It is a snapshot taken
// under the session lock.
type PageData struct {
	Meta   Meta
	Page   view.Page
	View   string
	Title  string
	Base   string
	Static bool
	Year   int

	Theme     string
	Dark      bool
	RootClass string
	ScrollY   int

	Nav    []navLink
	Social []content.SocialLink
	Notice string

	// Slides and Slide seed the client carousel of static exports.
	Slides []string
	Slide  int

	Hero *heroData

	Works       []content.WorkItem
	Active      *content.WorkItem
	ActiveIndex int

	AboutImage   string
	ContactImage string
	Clients      []string
	Exhibitions  []content.Credit
	Awards       []content.Credit

	Form contact.Form

	Featured     *content.Post
	FeaturedSlug string
	Articles     []content.Post
	Stories      []content.Story

	Post *content.Post

	NotFoundImage string
}

// compose snapshots st for rendering. Callers must hold the state lock.
func (s *Site) compose(st *session.State, base string, static bool) *PageData {
	cur := st.Router.Current()
	d := &PageData{
		Meta:      s.meta,
		Page:      cur,
		View:      cur.String(),
		Base:      base,
		Static:    static,
		Year:      s.now().Year(),
		Theme:     st.Theme.Preference().String(),
		Dark:      st.Theme.IsDark(),
		RootClass: st.Root.String(),
		ScrollY:   st.Router.ScrollY(),
		Social:    content.SocialLinks,
		Notice:    st.TakeNotice(),
		Slides:    st.Hero.Slides(),
		Slide:     st.Hero.Index(),
	}
	for _, item := range view.HeaderNav {
		d.Nav = append(d.Nav, navLink{
			Label:  item.Label,
			Href:   link(base, item.Page.String(), ""),
			Active: item.Page == cur || (item.Page == view.Blog && cur == view.BlogSingle),
		})
	}

	switch cur {
	case view.Home:
		d.Hero = &heroData{Slides: d.Slides, Index: d.Slide, Current: st.Hero.Current()}
		d.Works = content.Works
	case view.Work:
		active, idx := content.ActiveWork(st.ActiveWork)
		d.Title = "Work"
		d.Works = content.Works
		d.Active = &active
		d.ActiveIndex = idx
	case view.About:
		d.Title = "About"
		d.AboutImage = content.AboutImage
		d.Clients = content.Clients
		d.Exhibitions = content.Exhibitions
		d.Awards = content.Awards
	case view.Contact:
		d.Title = "Contact"
		d.ContactImage = content.ContactImage
		d.Form = st.Form
	case view.Blog:
		d.Title = "Blog"
		if f, ok := s.catalog.Featured(); ok {
			d.Featured = &f
			d.FeaturedSlug = f.Slug
		}
		d.Articles = s.catalog.Articles()
		d.Stories = content.Stories
	case view.BlogSingle:
		post := s.catalog.Post(st.PostSlug)
		d.Title = post.Title
		d.Post = &post
	case view.NotFound:
		d.Title = "Not Found"
		d.NotFoundImage = content.NotFoundImage
	}
	return d
}
