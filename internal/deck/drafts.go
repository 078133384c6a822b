package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// Placeholders used when a generated draft leaves chapter or title empty.
const (
	DraftChapterPlaceholder = "Novo Slide"
	DraftTitlePlaceholder   = "Slide"
)

// DraftError reports why one generated draft was rejected.
type DraftError struct {
	Index  int
	Reason string
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("draft %d: %s", e.Index, e.Reason)
}

func (e *DraftError) Unwrap() error { return common.ErrValidation }

type draft struct {
	Layout    string    `json:"layout"`
	Chapter   string    `json:"chapter"`
	Title     string    `json:"title"`
	Text      *[]string `json:"text"`
	Highlight string    `json:"highlight"`
}

var fence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// ParseDrafts turns a generator response into ready-to-append slides.
// The response is a JSON array of drafts or an object with a "slides"
// array, optionally wrapped in a markdown fence or surrounding prose.
// Either every draft is valid and all are returned, or an error wrapping
// common.ErrValidation is returned and nothing is.
func ParseDrafts(raw string) ([]Slide, error) {
	body := extractJSON(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty generator response", common.ErrValidation)
	}

	var items []draft
	if strings.HasPrefix(body, "[") {
		if err := json.Unmarshal([]byte(body), &items); err != nil {
			return nil, fmt.Errorf("%w: malformed drafts: %v", common.ErrValidation, err)
		}
	} else {
		var envelope struct {
			Slides *[]draft `json:"slides"`
		}
		if err := json.Unmarshal([]byte(body), &envelope); err != nil {
			return nil, fmt.Errorf("%w: malformed drafts: %v", common.ErrValidation, err)
		}
		if envelope.Slides == nil {
			return nil, fmt.Errorf("%w: response has no slides array", common.ErrValidation)
		}
		items = *envelope.Slides
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: response contains no slides", common.ErrValidation)
	}

	slides := make([]Slide, 0, len(items))
	for i, d := range items {
		s, err := d.toSlide(i)
		if err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, nil
}

func (d draft) toSlide(i int) (Slide, error) {
	layout := LayoutStandard
	if strings.TrimSpace(d.Layout) != "" {
		l, err := ParseLayout(d.Layout)
		if err != nil {
			return Slide{}, &DraftError{Index: i, Reason: fmt.Sprintf("unknown layout %q", d.Layout)}
		}
		layout = l
	}

	if d.Text == nil {
		return Slide{}, &DraftError{Index: i, Reason: "missing text"}
	}

	s := Normalize(Slide{
		ID:     NewID(),
		Layout: layout,
		Content: Content{
			Chapter:   strings.TrimSpace(d.Chapter),
			Title:     strings.TrimSpace(d.Title),
			Text:      *d.Text,
			Highlight: d.Highlight,
		},
	})
	if len(s.Content.Text) == 1 && s.Content.Text[0] == "" {
		return Slide{}, &DraftError{Index: i, Reason: "no non-blank paragraphs"}
	}
	if s.Content.Chapter == "" {
		s.Content.Chapter = DraftChapterPlaceholder
	}
	if s.Content.Title == "" {
		s.Content.Title = DraftTitlePlaceholder
	}
	return s, nil
}

func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if m := fence.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	if s == "" || json.Valid([]byte(s)) {
		return s
	}

	open := strings.IndexAny(s, "[{")
	if open < 0 {
		return s
	}
	closer := "}"
	if s[open] == '[' {
		closer = "]"
	}
	end := strings.LastIndex(s, closer)
	if end < open {
		return s
	}
	return s[open : end+1]
}
