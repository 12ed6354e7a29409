package site

import (
	"fmt"
	"html/template"
	"io"

	"github.com/hanssen-studio/portfolio/internal/view"
)

// animatedText feeds the "animated" partial: the hover-reveal label.
type animatedText struct {
	Text  string
	Style string
	Arrow bool
}

var funcs = template.FuncMap{
	"link": link,
	"add":  func(a, b int) int { return a + b },
	"animated": func(text, style string) animatedText {
		return animatedText{Text: text, Style: style}
	},
	"animatedArrow": func(text, style string) animatedText {
		return animatedText{Text: text, Style: style, Arrow: true}
	},
}

// Renderer holds one compiled template set per page.
type Renderer struct {
	pages map[view.Page]*template.Template
}

// NewRenderer compiles the layout and every page template.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	r := &Renderer{pages: make(map[view.Page]*template.Template)}
	for _, p := range view.Pages() {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(pageTemplate(p)); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", p, err)
		}
		r.pages[p] = t
	}
	return r, nil
}

func pageTemplate(p view.Page) string {
	switch p {
	case view.Home:
		return homeTemplate
	case view.Work:
		return workTemplate
	case view.About:
		return aboutTemplate
	case view.Contact:
		return contactTemplate
	case view.Blog:
		return blogTemplate
	case view.BlogSingle:
		return blogSingleTemplate
	case view.NotFound:
		return notFoundTemplate
	}
	panic(fmt.Sprintf("site: no template for page %d", int(p)))
}

// Render writes the page d describes.
func (r *Renderer) Render(w io.Writer, d *PageData) error {
	t, ok := r.pages[d.Page]
	if !ok {
		return fmt.Errorf("no template for page %s", d.Page)
	}
	return t.ExecuteTemplate(w, "layout", d)
}

// link resolves a page id to a URL. A base of "/" yields server routes;
// any other base yields file paths relative to the exported page.
func link(base, id, slug string) string {
	p, ok := view.Parse(id)
	if !ok {
		p = view.NotFound
	}
	if base == "/" {
		if p == view.BlogSingle {
			return "/blog/" + slug
		}
		return p.Path()
	}
	return base + exportPath(p, slug)
}

// exportPath is the file a page is written to by the exporter.
func exportPath(p view.Page, slug string) string {
	switch p {
	case view.Home:
		return "index.html"
	case view.NotFound:
		return "404.html"
	case view.BlogSingle:
		return "blog/" + slug + "/index.html"
	}
	return p.String() + "/index.html"
}
