package models

import "context"

// EmbeddingsClient embeds text into fixed-width vectors sized to the
// vector index.
type EmbeddingsClient interface {
	// EmbedText embeds a single text. The returned vector always has the
	// index width: narrower model output is zero-padded, never
	// renormalized, so stored vectors stay bit-compatible across calls.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// Dimensions returns the width of vectors produced by EmbedText.
	Dimensions() int
}

// TextEmbedder is the raw model client wrapped by an EmbeddingsClient.
// Implementations return vectors of the model's native width.
type TextEmbedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
