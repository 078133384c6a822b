// Package deck is the presentation document model: slides, their layouts
// and layout payloads, deck metadata and the bundled starter deck.
package deck

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// Layout selects how a slide is presented.
type Layout string

const (
	LayoutStandard  Layout = "standard"
	LayoutTimeline  Layout = "timeline"
	LayoutDarkOrbit Layout = "dark-orbit"
	LayoutChart     Layout = "chart"
	LayoutQuote     Layout = "quote"
)

// Layouts lists every known layout in presentation order.
var Layouts = []Layout{LayoutStandard, LayoutTimeline, LayoutDarkOrbit, LayoutChart, LayoutQuote}

func (l Layout) Valid() bool {
	for _, known := range Layouts {
		if l == known {
			return true
		}
	}
	return false
}

// ParseLayout accepts a layout name case-insensitively.
func ParseLayout(s string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: unknown layout %q", common.ErrValidation, s)
	}
	return l, nil
}
