package editor

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// Field names a scalar slide field editable by SetField.
type Field string

const (
	FieldChapter   Field = "chapter"
	FieldTitle     Field = "title"
	FieldHighlight Field = "highlight"
)

// EventField names an editable timeline event field.
type EventField string

const (
	EventYear  EventField = "year"
	EventLabel EventField = "label"
	EventDesc  EventField = "desc"
)

// OrbitField names an editable orbit payload field.
type OrbitField string

const (
	OrbitCenter OrbitField = "center"
	OrbitOrbit1 OrbitField = "orbit1"
	OrbitOrbit2 OrbitField = "orbit2"
	OrbitLabel1 OrbitField = "label1"
	OrbitLabel2 OrbitField = "label2"
)

// ChartField names an editable chart payload field.
type ChartField string

const (
	ChartTitle      ChartField = "title"
	ChartLeftLabel  ChartField = "leftlabel"
	ChartRightLabel ChartField = "rightlabel"
	ChartOption1    ChartField = "option1"
	ChartOption2    ChartField = "option2"
)

// MetaField names an editable deck metadata field.
type MetaField string

const (
	MetaTitle    MetaField = "title"
	MetaSubtitle MetaField = "subtitle"
	MetaAuthor   MetaField = "author"
)

func parseName[T ~string](kind, s string, known ...T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range known {
		if v == k {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown %s field %q", common.ErrValidation, kind, s)
}

func ParseField(s string) (Field, error) {
	return parseName("slide", s, FieldChapter, FieldTitle, FieldHighlight)
}

func ParseEventField(s string) (EventField, error) {
	return parseName("event", s, EventYear, EventLabel, EventDesc)
}

func ParseOrbitField(s string) (OrbitField, error) {
	return parseName("orbit", s, OrbitCenter, OrbitOrbit1, OrbitOrbit2, OrbitLabel1, OrbitLabel2)
}

func ParseChartField(s string) (ChartField, error) {
	return parseName("chart", s, ChartTitle, ChartLeftLabel, ChartRightLabel, ChartOption1, ChartOption2)
}

func ParseMetaField(s string) (MetaField, error) {
	return parseName("metadata", s, MetaTitle, MetaSubtitle, MetaAuthor)
}
