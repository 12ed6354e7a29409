package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// newMarkdown returns the renderer used for post bodies.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// splitFrontMatter separates a leading yaml block delimited by "---" lines
// from the markdown body. Files without front matter return a nil header.
func splitFrontMatter(src []byte) (header, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return nil, src, nil
	}
	rest := src[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):], nil
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("---")], nil, nil
		}
		return nil, nil, errors.New("unterminated front matter")
	}
	return rest[:end+1], rest[end+len("\n---\n"):], nil
}

// parsePost decodes one markdown file into a Post.
func parsePost(md goldmark.Markdown, src []byte) (Post, error) {
	header, body, err := splitFrontMatter(src)
	if err != nil {
		return Post{}, err
	}
	var p Post
	if len(header) > 0 {
		if err := yaml.Unmarshal(header, &p); err != nil {
			return Post{}, fmt.Errorf("decoding front matter: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Post{}, fmt.Errorf("converting markdown: %w", err)
	}
	p.HTML = template.HTML(buf.String())
	p.Content = firstParagraph(body)
	return p, nil
}

// firstParagraph returns the first run of non-heading text lines joined by
// spaces.
func firstParagraph(body []byte) string {
	var parts [][]byte
	for _, line := range bytes.Split(body, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if len(parts) > 0 {
				break
			}
			continue
		}
		if line[0] == '#' {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return string(bytes.Join(parts, []byte(" ")))
}
