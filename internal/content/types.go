package content

import "html/template"

// SocialLink is an outbound profile link shown in headers and footers.
type SocialLink struct {
	Name string
	URL  string
}

// WorkItem is one project in the work index.
type WorkItem struct {
	Name  string
	Type  string // "Commercial" or "Editorial"
	Year  string
	Image string
}

// Credit is a dated line in the about page lists (exhibitions, awards).
type Credit struct {
	Title string
	Year  string
}

// Story is a tile in the blog gallery.
type Story struct {
	Title    string
	Image    string
	Inverted bool // rendered on the inverse palette
}

// Post is a blog article. Content is the plain text summary of the body;
// HTML is the rendered body.
type Post struct {
	Slug        string        `yaml:"slug"`
	Title       string        `yaml:"title"`
	Excerpt     string        `yaml:"excerpt"`
	Image       string        `yaml:"image"`
	Category    string        `yaml:"category"`
	ReadingTime string        `yaml:"reading_time"`
	Date        string        `yaml:"date"`
	Featured    bool          `yaml:"featured"`
	Order       int           `yaml:"order"`
	Content     string        `yaml:"-"`
	HTML        template.HTML `yaml:"-"`
}

// NotFoundPost is returned for any slug without a post.
var NotFoundPost = Post{
	Title:   "Not Found",
	Content: "Post not found",
	HTML:    template.HTML("<p>Post not found</p>"),
}
