package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
	"github.com/dmitrijs2005/deckkeeper/internal/playback"
	"golang.org/x/term"
)

// getTermSize is a test seam for term.GetSize.
var getTermSize = term.GetSize

const defaultWidth = 80

func terminalWidth() int {
	w, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil || w < 20 {
		return defaultWidth
	}
	return w
}

// wrap breaks text into lines of at most width runes on word boundaries.
// Words longer than width get a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	for _, word := range words {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	return append(lines, cur.String())
}

func writeWrapped(w io.Writer, indent, text string, width int) {
	for _, line := range wrap(text, width-utf8.RuneCountInString(indent)) {
		fmt.Fprintln(w, indent+line)
	}
}

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("─", width))
}

// RenderFrame prints one playback frame as plain text.
func RenderFrame(w io.Writer, doc deck.Document, f playback.Frame, width int) {
	rule(w, width)
	switch f.Kind {
	case playback.FrameHero:
		fmt.Fprintln(w, strings.ToUpper(doc.Meta.Title))
		if doc.Meta.Subtitle != "" {
			writeWrapped(w, "", doc.Meta.Subtitle, width)
		}
		fmt.Fprintln(w)
		writeWrapped(w, "", deck.HeroTagline, width)
		fmt.Fprintln(w)
		fmt.Fprintln(w, doc.Meta.Author)

	case playback.FrameContent:
		if f.Slide < 0 || f.Slide >= len(doc.Slides) {
			return
		}
		renderSlide(w, doc.Slides[f.Slide], width)

	case playback.FrameBibliography:
		page := deck.Bibliography(f.Slide)
		fmt.Fprintln(w, page.Heading)
		fmt.Fprintln(w)
		for _, r := range page.References {
			writeWrapped(w, "  ", fmt.Sprintf("%s %s %s", r.Author, r.Title, r.Details), width)
		}

	case playback.FrameFooter:
		fmt.Fprintln(w, doc.Meta.Title)
		writeWrapped(w, "", deck.FooterCredit(doc.Meta), width)
	}
	rule(w, width)
}

func renderSlide(w io.Writer, s deck.Slide, width int) {
	c := s.Content
	fmt.Fprintf(w, "%s · %s\n", strings.ToUpper(c.Chapter), s.Layout)
	fmt.Fprintln(w, c.Title)
	fmt.Fprintln(w)

	for _, p := range c.Text {
		writeWrapped(w, "", p, width)
		fmt.Fprintln(w)
	}

	if c.Highlight != "" {
		writeWrapped(w, "  │ ", c.Highlight, width)
		fmt.Fprintln(w)
	}

	switch s.Layout {
	case deck.LayoutTimeline:
		timeline := c.Timeline
		if len(timeline) == 0 {
			timeline = deck.DefaultTimeline()
		}
		for _, e := range timeline {
			writeWrapped(w, "  • ", fmt.Sprintf("%s · %s: %s", e.Year, e.Label, e.Desc), width)
		}
	case deck.LayoutDarkOrbit:
		o := c.Orbit
		if o == nil {
			o = deck.DefaultOrbit()
		}
		fmt.Fprintf(w, "  (%s) ← %s: %s ← %s: %s\n", o.Center, o.Label1, o.Orbit1, o.Label2, o.Orbit2)
	case deck.LayoutChart:
		ch := c.Chart
		if ch == nil {
			ch = deck.DefaultChart()
		}
		fmt.Fprintf(w, "  %s\n  %s: %s | %s: %s\n", ch.Title, ch.LeftLabel, ch.Option1, ch.RightLabel, ch.Option2)
	}
}

// RenderOutline prints the slide list used by the editor.
func RenderOutline(w io.Writer, doc deck.Document) {
	fmt.Fprintf(w, "%s / %s / %s\n", doc.Meta.Title, doc.Meta.Subtitle, doc.Meta.Author)
	for i, s := range doc.Slides {
		fmt.Fprintf(w, "%3d. [%s] %s · %s (%d paragraphs)\n", i+1, s.Layout, s.Content.Chapter, s.Content.Title, len(s.Content.Text))
	}
}

// RenderListing prints the stored presentations, newest first.
func RenderListing(w io.Writer, rows []models.Summary, fromCache bool) {
	if fromCache {
		fmt.Fprintln(w, "(offline: showing the last cached listing)")
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No presentations stored.")
		return
	}
	for _, r := range rows {
		mark := " "
		if r.Active {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s  %-30s %-25s %s  %d slides\n", mark, r.ID, r.Title, r.Author, r.DisplayDate(), r.Slides)
	}
}
