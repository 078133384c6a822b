// Package models holds the rows stored by the presentations server.
package models

import (
	"encoding/json"
	"time"
)

// Presentation is a row of the presentations table.
type Presentation struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Date      string          `json:"date"`
	Slides    int             `json:"slides"`
	Content   json.RawMessage `json:"content"`
	Meta      json.RawMessage `json:"meta"`
	Active    bool            `json:"active"`
}

// Columns lists the table columns in their canonical order.
var Columns = []string{"id", "created_at", "title", "author", "date", "slides", "content", "meta", "active"}

// IsColumn reports whether name is a column of the table.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

func rawOrNull(b json.RawMessage) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("null")
	}
	return b
}

// Project returns the subset of p named by cols. An empty cols means all.
func (p *Presentation) Project(cols []string) map[string]any {
	if len(cols) == 0 {
		cols = Columns
	}
	out := make(map[string]any, len(cols))
	for _, c := range cols {
		switch c {
		case "id":
			out[c] = p.ID
		case "created_at":
			out[c] = p.CreatedAt
		case "title":
			out[c] = p.Title
		case "author":
			out[c] = p.Author
		case "date":
			out[c] = p.Date
		case "slides":
			out[c] = p.Slides
		case "content":
			out[c] = rawOrNull(p.Content)
		case "meta":
			out[c] = rawOrNull(p.Meta)
		case "active":
			out[c] = p.Active
		}
	}
	return out
}

// Patch is a set of column writes. Nil fields are left untouched.
type Patch struct {
	Title   *string
	Author  *string
	Date    *string
	Slides  *int
	Content json.RawMessage
	Meta    json.RawMessage
	Active  *bool
}

// Empty reports whether the patch writes nothing.
func (p *Patch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Date == nil && p.Slides == nil &&
		p.Content == nil && p.Meta == nil && p.Active == nil
}

// Apply writes the patch onto a fresh row.
func (p *Patch) Apply(row *Presentation) {
	if p.Title != nil {
		row.Title = *p.Title
	}
	if p.Author != nil {
		row.Author = *p.Author
	}
	if p.Date != nil {
		row.Date = *p.Date
	}
	if p.Slides != nil {
		row.Slides = *p.Slides
	}
	if p.Content != nil {
		row.Content = p.Content
	}
	if p.Meta != nil {
		row.Meta = p.Meta
	}
	if p.Active != nil {
		row.Active = *p.Active
	}
}
