package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
)

//go:embed posts
var embeddedPosts embed.FS

// PostPattern selects post files inside a content tree.
const PostPattern = "posts/**/*.md"

// Catalog indexes blog posts by slug.
type Catalog struct {
	bySlug  map[string]Post
	ordered []Post
}

// Load builds a catalog from the embedded posts, then overlays the posts
// found under dir when dir is non-empty. An overlay post replaces an
// embedded post with the same slug.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{bySlug: make(map[string]Post)}
	md := newMarkdown()

	if err := c.addFS(md, embeddedPosts); err != nil {
		return nil, fmt.Errorf("loading embedded posts: %w", err)
	}
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("accessing content dir %s: %w", dir, err)
		}
		if err := c.addFS(md, os.DirFS(dir)); err != nil {
			return nil, fmt.Errorf("loading posts from %s: %w", dir, err)
		}
	}
	c.reindex()
	return c, nil
}

// NewCatalog builds a catalog from an arbitrary file system laid out like
// the content directory.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{bySlug: make(map[string]Post)}
	if err := c.addFS(newMarkdown(), fsys); err != nil {
		return nil, err
	}
	c.reindex()
	return c, nil
}

func (c *Catalog) addFS(md goldmark.Markdown, fsys fs.FS) error {
	matches, err := doublestar.Glob(fsys, PostPattern)
	if err != nil {
		return fmt.Errorf("matching %s: %w", PostPattern, err)
	}
	sort.Strings(matches)
	for _, name := range matches {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		p, err := parsePost(md, src)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		if p.Slug == "" {
			p.Slug = strings.TrimSuffix(path.Base(name), ".md")
		}
		if !validSlug(p.Slug) {
			return fmt.Errorf("parsing %s: invalid slug %q", name, p.Slug)
		}
		if p.Title == "" {
			p.Title = p.Slug
		}
		c.bySlug[p.Slug] = p
	}
	return nil
}

// validSlug reports whether slug is a single path segment, so it can name
// both a URL segment and an export directory.
func validSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." && !strings.ContainsAny(slug, `/\`)
}

func (c *Catalog) reindex() {
	c.ordered = c.ordered[:0]
	for _, p := range c.bySlug {
		c.ordered = append(c.ordered, p)
	}
	sort.Slice(c.ordered, func(i, j int) bool {
		a, b := c.ordered[i], c.ordered[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Slug < b.Slug
	})
}

// Lookup returns the post for slug and whether it exists.
func (c *Catalog) Lookup(slug string) (Post, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

// Post returns the post for slug, or NotFoundPost for unknown slugs.
func (c *Catalog) Post(slug string) Post {
	if p, ok := c.Lookup(slug); ok {
		return p
	}
	return NotFoundPost
}

// Articles returns the non-featured posts in listing order.
func (c *Catalog) Articles() []Post {
	var out []Post
	for _, p := range c.ordered {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first featured post.
func (c *Catalog) Featured() (Post, bool) {
	for _, p := range c.ordered {
		if p.Featured {
			return p, true
		}
	}
	return Post{}, false
}

// Slugs returns every known slug in listing order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.ordered))
	for i, p := range c.ordered {
		out[i] = p.Slug
	}
	return out
}
