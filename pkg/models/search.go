package models

// SearchMatch is a single similarity query hit. Transient: produced by a
// query, never persisted.
type SearchMatch struct {
	ID       string       `json:"id"`
	Score    float64      `json:"score"`
	Metadata NoteMetadata `json:"metadata"`
}

// IndexStats describes the state of the vector index. Used only for
// diagnostic startup reporting.
type IndexStats struct {
	Dimension        int     `json:"dimension"`
	TotalRecordCount int     `json:"totalRecordCount"`
	IndexFullness    float64 `json:"indexFullness"`
}
