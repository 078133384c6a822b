package deck

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// EventID is a timeline event identifier. Older decks stored numeric ids,
// so both JSON strings and numbers decode into it.
type EventID string

func (id *EventID) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = EventID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = EventID(n.String())
	return nil
}

type TimelineEvent struct {
	ID    EventID `json:"id"`
	Year  string  `json:"year"`
	Label string  `json:"label"`
	Desc  string  `json:"desc"`
}

type OrbitData struct {
	Center string `json:"center"`
	Orbit1 string `json:"orbit1"`
	Orbit2 string `json:"orbit2"`
	Label1 string `json:"label1"`
	Label2 string `json:"label2"`
}

type ChartData struct {
	Title      string `json:"title"`
	LeftLabel  string `json:"leftLabel"`
	RightLabel string `json:"rightLabel"`
	Option1    string `json:"option1"`
	Option2    string `json:"option2"`
}

// Content is the editable body of a slide. Layout payloads survive layout
// changes so switching back and forth never loses data.
type Content struct {
	Chapter   string          `json:"chapter"`
	Title     string          `json:"title"`
	Text      []string        `json:"text"`
	Highlight string          `json:"highlight,omitempty"`
	Timeline  []TimelineEvent `json:"timelineData,omitempty"`
	Orbit     *OrbitData      `json:"orbitData,omitempty"`
	Chart     *ChartData      `json:"chartData,omitempty"`
}

type Slide struct {
	ID      string  `json:"id"`
	Layout  Layout  `json:"layout"`
	Content Content `json:"content"`
}

// Metadata describes the deck as a whole.
type Metadata struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
}

// Document is the in-memory deck.
type Document struct {
	Slides []Slide
	Meta   Metadata
}

// NewID returns a fresh identifier for slides and timeline events.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the slide.
func (s Slide) Clone() Slide {
	c := s
	if s.Content.Text != nil {
		c.Content.Text = append([]string(nil), s.Content.Text...)
	}
	if s.Content.Timeline != nil {
		c.Content.Timeline = append([]TimelineEvent(nil), s.Content.Timeline...)
	}
	if s.Content.Orbit != nil {
		o := *s.Content.Orbit
		c.Content.Orbit = &o
	}
	if s.Content.Chart != nil {
		ch := *s.Content.Chart
		c.Content.Chart = &ch
	}
	return c
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	c := Document{Meta: d.Meta}
	if d.Slides != nil {
		c.Slides = make([]Slide, len(d.Slides))
		for i, s := range d.Slides {
			c.Slides[i] = s.Clone()
		}
	}
	return c
}

// Normalize is applied when an edit is committed: paragraphs are trimmed and
// blank ones dropped, a blank highlight becomes absent. A slide always keeps
// at least one paragraph.
func Normalize(s Slide) Slide {
	out := s.Clone()

	text := make([]string, 0, len(out.Content.Text))
	for _, p := range out.Content.Text {
		if p = strings.TrimSpace(p); p != "" {
			text = append(text, p)
		}
	}
	if len(text) == 0 {
		text = []string{""}
	}
	out.Content.Text = text
	out.Content.Highlight = strings.TrimSpace(out.Content.Highlight)

	return out
}

// NormalizeAll applies Normalize to every slide of a copy of d.
func NormalizeAll(d Document) Document {
	c := d.Clone()
	for i := range c.Slides {
		c.Slides[i] = Normalize(c.Slides[i])
	}
	return c
}

// EnsureIDs assigns fresh ids to slides and timeline events that lack one.
func EnsureIDs(slides []Slide) {
	for i := range slides {
		if slides[i].ID == "" {
			slides[i].ID = NewID()
		}
		for j := range slides[i].Content.Timeline {
			if slides[i].Content.Timeline[j].ID == "" {
				slides[i].Content.Timeline[j].ID = EventID(NewID())
			}
		}
	}
}

// MarshalSlides encodes the slide sequence as stored in a record's content.
func MarshalSlides(slides []Slide) ([]byte, error) {
	if slides == nil {
		slides = []Slide{}
	}
	return json.Marshal(slides)
}

// UnmarshalSlides decodes a record's content, assigning ids where missing.
// A missing or unknown layout tag is read as standard.
func UnmarshalSlides(b []byte) ([]Slide, error) {
	var slides []Slide
	if err := json.Unmarshal(b, &slides); err != nil {
		return nil, err
	}
	for i := range slides {
		if !slides[i].Layout.Valid() {
			slides[i].Layout = LayoutStandard
		}
	}
	EnsureIDs(slides)
	return slides, nil
}
