package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dmitrijs2005/deckkeeper/internal/client/models"
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
	"github.com/dmitrijs2005/deckkeeper/internal/playback"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	got := wrap("um dois três quatro cinco", 9)
	assert.Equal(t, []string{"um dois", "três", "quatro", "cinco"}, got)
	for _, l := range got {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 9)
	}

	assert.Equal(t, []string{""}, wrap("   ", 10))
	assert.Equal(t, []string{"supercalifragilistic"}, wrap("supercalifragilistic", 5))
}

func TestTerminalWidth(t *testing.T) {
	orig := getTermSize
	t.Cleanup(func() { getTermSize = orig })

	getTermSize = func(int) (int, int, error) { return 120, 40, nil }
	assert.Equal(t, 120, terminalWidth())

	getTermSize = func(int) (int, int, error) { return 0, 0, errors.New("not a terminal") }
	assert.Equal(t, defaultWidth, terminalWidth())
}

func TestRenderFrame_Kinds(t *testing.T) {
	doc := deck.Default()

	tests := []struct {
		name  string
		frame playback.Frame
		want  []string
	}{
		{name: "hero", frame: playback.Frame{Kind: playback.FrameHero}, want: []string{"O MANDATO PACTUAL", doc.Meta.Author}},
		{name: "content", frame: playback.Frame{Kind: playback.FrameContent, Slide: 0}, want: []string{doc.Slides[0].Content.Title, "INTRODUÇÃO"}},
		{name: "bibliography 1", frame: playback.Frame{Kind: playback.FrameBibliography, Slide: 1}, want: []string{"Referências Bíblicas", "Gênesis"}},
		{name: "bibliography 2", frame: playback.Frame{Kind: playback.FrameBibliography, Slide: 2}, want: []string{"Referências Teológicas", "BAVINCK"}},
		{name: "footer", frame: playback.Frame{Kind: playback.FrameFooter}, want: []string{deck.FooterCredit(doc.Meta)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderFrame(&buf, doc, tt.frame, 200)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRenderFrame_LayoutPayloadDefaults(t *testing.T) {
	doc := deck.Document{Slides: []deck.Slide{
		{Layout: deck.LayoutTimeline, Content: deck.Content{Text: []string{"x"}}},
		{Layout: deck.LayoutDarkOrbit, Content: deck.Content{Text: []string{"x"}}},
		{Layout: deck.LayoutChart, Content: deck.Content{Text: []string{"x"}, Highlight: "destaque"}},
	}}

	var buf bytes.Buffer
	RenderFrame(&buf, doc, playback.Frame{Kind: playback.FrameContent, Slide: 0}, 100)
	assert.Contains(t, buf.String(), "Salmo 127")

	buf.Reset()
	RenderFrame(&buf, doc, playback.Frame{Kind: playback.FrameContent, Slide: 1}, 100)
	assert.Contains(t, buf.String(), "(Cristo)")

	buf.Reset()
	RenderFrame(&buf, doc, playback.Frame{Kind: playback.FrameContent, Slide: 2}, 100)
	assert.Contains(t, buf.String(), "Investimento Eterno")
	assert.Contains(t, buf.String(), "│ destaque")
}

func TestRenderListing(t *testing.T) {
	var buf bytes.Buffer
	RenderListing(&buf, nil, false)
	assert.Contains(t, buf.String(), "No presentations stored.")

	buf.Reset()
	RenderListing(&buf, []models.Summary{
		{ID: "a", Title: "Um", Date: "01/02/2025", Slides: 7, Active: true},
		{ID: "b", Title: "Dois"},
	}, true)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "offline")
	assert.True(t, strings.HasPrefix(lines[1], "* a"))
	assert.True(t, strings.HasPrefix(lines[2], "  b"))
}
