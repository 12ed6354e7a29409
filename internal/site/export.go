package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hanssen-studio/portfolio/internal/progress"
	"github.com/hanssen-studio/portfolio/internal/session"
	"github.com/hanssen-studio/portfolio/internal/view"
)

// Exporter writes every page of a Site as static HTML. Each page is
// rendered from a fresh session, so exports show the default theme and
// slide; the theme switch and carousel run client side.
type Exporter struct {
	site     *Site
	sessions *session.Store
	reporter progress.Reporter
	workers  int
}

// NewExporter returns an Exporter rendering pages of site with sessions
// built from d.
func NewExporter(site *Site, d session.Defaults, reporter progress.Reporter) (*Exporter, error) {
	sessions, err := session.NewStore(d, 0)
	if err != nil {
		return nil, err
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Exporter{
		site:     site,
		sessions: sessions,
		reporter: reporter,
		workers:  runtime.NumCPU(),
	}, nil
}

type exportJob struct {
	page view.Page
	slug string
}

func (j exportJob) path() string { return exportPath(j.page, j.slug) }

// jobs lists every page once, with the blog-single view once per post.
func (e *Exporter) jobs() []exportJob {
	var jobs []exportJob
	for _, p := range view.Pages() {
		if p == view.BlogSingle {
			for _, slug := range e.site.catalog.Slugs() {
				jobs = append(jobs, exportJob{page: p, slug: slug})
			}
			continue
		}
		jobs = append(jobs, exportJob{page: p})
	}
	return jobs
}

// Export renders all pages into dir and returns the files written.
func (e *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	if err := writeFile(filepath.Join(dir, "static", "site.css"), []byte(cssContent)); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(dir, "static", "site.js"), []byte(pageScript)); err != nil {
		return nil, err
	}

	jobs := e.jobs()
	files := make([]string, len(jobs))
	var done atomic.Int64

	e.reporter.Start(len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rel := job.path()
			if err := e.exportPage(filepath.Join(dir, filepath.FromSlash(rel)), job); err != nil {
				return fmt.Errorf("exporting %s: %w", rel, err)
			}
			files[i] = rel
			e.reporter.Update(int(done.Add(1)), rel)
			return nil
		})
	}
	err := g.Wait()
	e.reporter.Finish()
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (e *Exporter) exportPage(dst string, job exportJob) error {
	st := e.sessions.Create()
	defer e.sessions.Delete(st.ID)

	rel := job.path()
	base := strings.Repeat("../", strings.Count(rel, "/"))

	var buf bytes.Buffer
	err := st.Do(func(st *session.State) error {
		st.PostSlug = job.slug
		if err := st.Router.Navigate(job.page); err != nil {
			return err
		}
		return e.site.renderer.Render(&buf, e.site.compose(st, base, true))
	})
	if err != nil {
		return err
	}
	return writeFile(dst, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
