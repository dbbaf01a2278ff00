package models

import "time"

// Note is a stored note. The vector store owns the authoritative copy;
// the service holds no independent state.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// NoteWithScore is a note as returned by a similarity query.
type NoteWithScore struct {
	Note
	Score float64 `json:"score"`
}

// NoteMetadata is the metadata payload stored alongside a note's vector.
type NoteMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}
