// Package carousel implements the hero image slider of the home page.
package carousel

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by Select for an index outside the slide list.
var ErrOutOfRange = errors.New("slide index out of range")

// Carousel cycles through a fixed, non-empty list of slides. The index is
// always in [0, Len()).
type Carousel struct {
	slides []string
	index  int
}

// New returns a carousel over slides positioned at start. A start outside
// the list is clamped to the nearest slide.
func New(slides []string, start int) (*Carousel, error) {
	if len(slides) == 0 {
		return nil, errors.New("carousel needs at least one slide")
	}
	if start < 0 {
		start = 0
	}
	if start >= len(slides) {
		start = len(slides) - 1
	}
	s := make([]string, len(slides))
	copy(s, slides)
	return &Carousel{slides: s, index: start}, nil
}

func (c *Carousel) Len() int { return len(c.slides) }
func (c *Carousel) Index() int { return c.index }
func (c *Carousel) Current() string { return c.slides[c.index] }

// Slides returns a copy of the slide list.
func (c *Carousel) Slides() []string {
	out := make([]string, len(c.slides))
	copy(out, c.slides)
	return out
}

// Next advances one slide, wrapping to the first.
func (c *Carousel) Next() int {
	c.index = (c.index + 1) % len(c.slides)
	return c.index
}

// Prev steps back one slide, wrapping to the last.
func (c *Carousel) Prev() int {
	n := len(c.slides)
	c.index = (c.index - 1 + n) % n
	return c.index
}

// Select jumps to slide i. An out-of-range i leaves the carousel unchanged.
func (c *Carousel) Select(i int) error {
	if i < 0 || i >= len(c.slides) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(c.slides))
	}
	c.index = i
	return nil
}
