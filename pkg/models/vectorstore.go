package models

import "context"

// VectorStore is a thin pass-through to a remote vector index.
type VectorStore interface {
	// Upsert inserts or overwrites the record at id.
	Upsert(ctx context.Context, id string, values []float32, metadata NoteMetadata) error
	// Query returns up to topK nearest records, descending by score. An
	// empty result is not an error.
	Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]SearchMatch, error)
	// Fetch returns the note stored at id, or a NotFoundError.
	Fetch(ctx context.Context, id string) (*Note, error)
	// DeleteOne removes the record at id. The store does not report
	// whether the record existed; callers that need to distinguish
	// "not found" from "deleted" must Fetch first.
	DeleteOne(ctx context.Context, id string) error
	// DescribeIndexStats reports index dimension and occupancy.
	DescribeIndexStats(ctx context.Context) (*IndexStats, error)
}
