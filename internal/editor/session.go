// Package editor implements the admin editing session over the in-memory
// deck. Every operation addresses slides, paragraphs and events by index;
// an index that no longer exists turns the operation into a no-op, so a
// stale reference can never corrupt the document.
package editor

import (
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
)

type Mode int

const (
	ModeBrowsing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "browsing"
}

// Placeholders for newly created content.
const (
	NewSlideChapter   = "Novo Capítulo"
	NewSlideTitle     = "Novo Slide"
	NewSlideParagraph = "Escreva o conteúdo aqui."
	NewEventYear      = "Ano"
	NewEventLabel     = "Título"
	NewEventDesc      = "Descrição"
)

// Session owns the document and the editing mode. It is not safe for
// concurrent use; the UI loop is its only caller.
type Session struct {
	doc   deck.Document
	mode  Mode
	newID func() string
}

func NewSession(doc deck.Document) *Session {
	return &Session{doc: doc, newID: deck.NewID}
}

func (s *Session) Mode() Mode    { return s.mode }
func (s *Session) Editing() bool { return s.mode == ModeEditing }

// ToggleEditing flips between browsing and editing and returns the new mode.
func (s *Session) ToggleEditing() Mode {
	if s.mode == ModeEditing {
		s.mode = ModeBrowsing
	} else {
		s.mode = ModeEditing
	}
	return s.mode
}

func (s *Session) SetEditing(on bool) {
	if on {
		s.mode = ModeEditing
	} else {
		s.mode = ModeBrowsing
	}
}

// Document exposes the live document for read-only consumers such as the
// playback controller and renderers.
func (s *Session) Document() *deck.Document { return &s.doc }

// SlideCount is the number of content slides.
func (s *Session) SlideCount() int { return len(s.doc.Slides) }

// Snapshot returns a deep copy of the document.
func (s *Session) Snapshot() deck.Document { return s.doc.Clone() }

// Replace swaps in a whole document. It is used by load and reset and works
// in any mode.
func (s *Session) Replace(doc deck.Document) {
	s.doc = doc
}

func (s *Session) slide(i int) (*deck.Slide, bool) {
	if s.mode != ModeEditing || i < 0 || i >= len(s.doc.Slides) {
		return nil, false
	}
	return &s.doc.Slides[i], true
}

// AddSlide appends a standard slide with one placeholder paragraph and
// returns its index, or -1 when not editing.
func (s *Session) AddSlide() int {
	if s.mode != ModeEditing {
		return -1
	}
	s.doc.Slides = append(s.doc.Slides, deck.Slide{
		ID:     s.newID(),
		Layout: deck.LayoutStandard,
		Content: deck.Content{
			Chapter: NewSlideChapter,
			Title:   NewSlideTitle,
			Text:    []string{NewSlideParagraph},
		},
	})
	return len(s.doc.Slides) - 1
}

// AppendSlides adds already built slides, such as generated drafts, at the end.
func (s *Session) AppendSlides(slides []deck.Slide) bool {
	if s.mode != ModeEditing || len(slides) == 0 {
		return false
	}
	for _, sl := range slides {
		s.doc.Slides = append(s.doc.Slides, sl.Clone())
	}
	return true
}

func (s *Session) RemoveSlide(i int) bool {
	if _, ok := s.slide(i); !ok {
		return false
	}
	s.doc.Slides = append(s.doc.Slides[:i], s.doc.Slides[i+1:]...)
	return true
}

// MoveSlide swaps slide i with its neighbour in direction dir (-1 or +1).
func (s *Session) MoveSlide(i, dir int) bool {
	if dir != -1 && dir != 1 {
		return false
	}
	if _, ok := s.slide(i); !ok {
		return false
	}
	j := i + dir
	if j < 0 || j >= len(s.doc.Slides) {
		return false
	}
	s.doc.Slides[i], s.doc.Slides[j] = s.doc.Slides[j], s.doc.Slides[i]
	return true
}

// SetLayout changes the layout only; payloads of other layouts are kept.
func (s *Session) SetLayout(i int, l deck.Layout) bool {
	sl, ok := s.slide(i)
	if !ok || !l.Valid() {
		return false
	}
	sl.Layout = l
	return true
}

func (s *Session) SetField(i int, f Field, value string) bool {
	sl, ok := s.slide(i)
	if !ok {
		return false
	}
	switch f {
	case FieldChapter:
		sl.Content.Chapter = value
	case FieldTitle:
		sl.Content.Title = value
	case FieldHighlight:
		sl.Content.Highlight = value
	default:
		return false
	}
	return true
}

func (s *Session) SetParagraph(i, p int, text string) bool {
	sl, ok := s.slide(i)
	if !ok || p < 0 || p >= len(sl.Content.Text) {
		return false
	}
	sl.Content.Text[p] = text
	return true
}

func (s *Session) AppendParagraph(i int) bool {
	sl, ok := s.slide(i)
	if !ok {
		return false
	}
	sl.Content.Text = append(sl.Content.Text, "")
	return true
}

// RemoveParagraph deletes paragraph p. The last remaining paragraph stays.
func (s *Session) RemoveParagraph(i, p int) bool {
	sl, ok := s.slide(i)
	if !ok || p < 0 || p >= len(sl.Content.Text) || len(sl.Content.Text) == 1 {
		return false
	}
	sl.Content.Text = append(sl.Content.Text[:p], sl.Content.Text[p+1:]...)
	return true
}

func (s *Session) AddTimelineEvent(i int) bool {
	sl, ok := s.slide(i)
	if !ok {
		return false
	}
	sl.Content.Timeline = append(sl.Content.Timeline, deck.TimelineEvent{
		ID:    deck.EventID(s.newID()),
		Year:  NewEventYear,
		Label: NewEventLabel,
		Desc:  NewEventDesc,
	})
	return true
}

func (s *Session) RemoveTimelineEvent(i, e int) bool {
	sl, ok := s.slide(i)
	if !ok || e < 0 || e >= len(sl.Content.Timeline) {
		return false
	}
	sl.Content.Timeline = append(sl.Content.Timeline[:e], sl.Content.Timeline[e+1:]...)
	return true
}

func (s *Session) UpdateTimelineEvent(i, e int, f EventField, value string) bool {
	sl, ok := s.slide(i)
	if !ok || e < 0 || e >= len(sl.Content.Timeline) {
		return false
	}
	ev := &sl.Content.Timeline[e]
	switch f {
	case EventYear:
		ev.Year = value
	case EventLabel:
		ev.Label = value
	case EventDesc:
		ev.Desc = value
	default:
		return false
	}
	return true
}

// UpdateOrbitField edits the orbit payload, creating it from defaults first.
func (s *Session) UpdateOrbitField(i int, f OrbitField, value string) bool {
	sl, ok := s.slide(i)
	if !ok {
		return false
	}
	o := sl.Content.Orbit
	if o == nil {
		o = deck.DefaultOrbit()
	}
	switch f {
	case OrbitCenter:
		o.Center = value
	case OrbitOrbit1:
		o.Orbit1 = value
	case OrbitOrbit2:
		o.Orbit2 = value
	case OrbitLabel1:
		o.Label1 = value
	case OrbitLabel2:
		o.Label2 = value
	default:
		return false
	}
	sl.Content.Orbit = o
	return true
}

// UpdateChartField edits the chart payload, creating it from defaults first.
func (s *Session) UpdateChartField(i int, f ChartField, value string) bool {
	sl, ok := s.slide(i)
	if !ok {
		return false
	}
	c := sl.Content.Chart
	if c == nil {
		c = deck.DefaultChart()
	}
	switch f {
	case ChartTitle:
		c.Title = value
	case ChartLeftLabel:
		c.LeftLabel = value
	case ChartRightLabel:
		c.RightLabel = value
	case ChartOption1:
		c.Option1 = value
	case ChartOption2:
		c.Option2 = value
	default:
		return false
	}
	sl.Content.Chart = c
	return true
}

// CommitSlide normalises slide i, as happens when an edit form is saved.
func (s *Session) CommitSlide(i int) bool {
	sl, ok := s.slide(i)
	if !ok {
		return false
	}
	*sl = deck.Normalize(*sl)
	return true
}

func (s *Session) SetMetadata(f MetaField, value string) bool {
	if s.mode != ModeEditing {
		return false
	}
	switch f {
	case MetaTitle:
		s.doc.Meta.Title = value
	case MetaSubtitle:
		s.doc.Meta.Subtitle = value
	case MetaAuthor:
		s.doc.Meta.Author = value
	default:
		return false
	}
	return true
}
