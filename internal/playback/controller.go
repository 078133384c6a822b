// Package playback drives slide-to-slide navigation over a frame sequence
// of one hero frame, the content slides and the fixed closing frames.
package playback

import "github.com/dmitrijs2005/deckkeeper/internal/deck"

// Source is what the controller needs to know about the deck.
type Source interface {
	SlideCount() int
	Editing() bool
}

// FrameKind classifies a frame index.
type FrameKind int

const (
	FrameHero FrameKind = iota
	FrameContent
	FrameBibliography
	FrameFooter
)

// Frame describes what is shown at an index. Slide is the content slide
// index for FrameContent and the page number (1 or 2) for FrameBibliography.
type Frame struct {
	Kind  FrameKind
	Slide int
}

type Controller struct {
	src       Source
	current   int
	direction int
}

func New(src Source) *Controller {
	return &Controller{src: src}
}

// Total is the number of frames currently playable.
func (c *Controller) Total() int {
	return deck.RenderedCount(c.src.SlideCount())
}

func (c *Controller) Current() int { return c.current }

// Direction is the sign of the last successful move, 0 before any move.
func (c *Controller) Direction() int { return c.direction }

// Paginate moves by delta when the target frame exists and the editor is
// closed. It reports whether the position changed.
func (c *Controller) Paginate(delta int) bool {
	if delta == 0 || c.src.Editing() {
		return false
	}
	next := c.current + delta
	if next < 0 || next >= c.Total() {
		return false
	}
	c.current = next
	if delta > 0 {
		c.direction = 1
	} else {
		c.direction = -1
	}
	return true
}

func (c *Controller) Next() bool { return c.Paginate(1) }
func (c *Controller) Prev() bool { return c.Paginate(-1) }

// Clamp pulls the position back inside the frame sequence after the deck
// shrank, for example when a shorter presentation is loaded.
func (c *Controller) Clamp() {
	if last := c.Total() - 1; c.current > last {
		c.current = last
	}
}

// Frame classifies index i; ok is false outside the sequence.
func (c *Controller) Frame(i int) (Frame, bool) {
	n := c.src.SlideCount()
	switch {
	case i < 0 || i >= deck.RenderedCount(n):
		return Frame{}, false
	case i == 0:
		return Frame{Kind: FrameHero}, true
	case i <= n:
		return Frame{Kind: FrameContent, Slide: i - 1}, true
	case i == n+1:
		return Frame{Kind: FrameBibliography, Slide: 1}, true
	case i == n+2:
		return Frame{Kind: FrameBibliography, Slide: 2}, true
	default:
		return Frame{Kind: FrameFooter}, true
	}
}

// CurrentFrame is Frame(Current()).
func (c *Controller) CurrentFrame() (Frame, bool) {
	return c.Frame(c.current)
}
