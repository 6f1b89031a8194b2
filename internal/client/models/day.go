// Package models defines the wire-level data structures the DayCast API
// exchanges with the client: daily input items with their edit history,
// generation snapshots, publish records, and per-user settings.
package models

import "time"

// InputType classifies an input item: free text, a link, or an uploaded photo.
type InputType string

const (
	InputText  InputType = "text"
	InputURL   InputType = "url"
	InputImage InputType = "image"
)

// Edit is an immutable record of a content change on an input item,
// capturing the content as it was before the edit. Append-only.
type Edit struct {
	ID         string    `json:"id"`
	OldContent string    `json:"old_content"`
	EditedAt   time.Time `json:"edited_at"`
}

// InputItem is one captured note, link, or photo for a day.
//
// Items are never hard-deleted from history views; clearing sets Cleared.
// Importance is a 0–5 rank or nil when unranked.
type InputItem struct {
	ID                  string    `json:"id"`
	Type                InputType `json:"type"`
	Content             string    `json:"content"`
	ExtractedText       *string   `json:"extracted_text"`
	ExtractError        *string   `json:"extract_error"`
	Date                string    `json:"date"`
	Importance          *int      `json:"importance"`
	IncludeInGeneration bool      `json:"include_in_generation"`
	Cleared             bool      `json:"cleared"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	Edits               []Edit    `json:"edits,omitempty"`
}

// Day is the aggregate of all input items and generations for one date.
type Day struct {
	Date        string       `json:"date"`
	InputItems  []InputItem  `json:"input_items"`
	Generations []Generation `json:"generations"`
}

// DaySummary is one row of the history listing.
type DaySummary struct {
	Date            string `json:"date"`
	InputCount      int    `json:"input_count"`
	GenerationCount int    `json:"generation_count"`
}

// DayList is a cursor-paginated page of day summaries.
type DayList struct {
	Items  []DaySummary `json:"items"`
	Cursor *string      `json:"cursor"`
}
