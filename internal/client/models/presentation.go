// Package models holds the client-side shapes of rows in the remote
// presentations table.
package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the dd/mm/yyyy form used for the record's date column.
const DateLayout = "02/01/2006"

// Record is a full row. Content and Meta are kept raw so the store client
// never has to understand the slide model.
type Record struct {
	ID        string          `json:"id,omitempty"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Date      string          `json:"date"`
	Slides    int             `json:"slides"`
	Content   json.RawMessage `json:"content"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	Active    bool            `json:"active"`
}

// Summary is a listing row; content is never fetched for listings.
type Summary struct {
	ID        string     `json:"id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Date      string     `json:"date"`
	Slides    int        `json:"slides"`
	Active    bool       `json:"active"`
}

// DisplayDate prefers the stored date and falls back to the creation time.
func (s Summary) DisplayDate() string {
	if s.Date != "" {
		return s.Date
	}
	if s.CreatedAt != nil {
		return s.CreatedAt.Format(DateLayout)
	}
	return ""
}

// SummaryColumns is the select list for listings.
const SummaryColumns = "id,created_at,title,author,date,slides,active"
