package llms

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

const EmptyEmbeddingTextError = "text to embed must not be empty"

var _ models.EmbeddingsClient = &Embedder{}

// NewEmbedder returns an Embedder sized to the vector index width. The
// underlying model client is not created until the first EmbedText call.
func NewEmbedder(cfg *config.Config) *Embedder {
	return &Embedder{
		cfg:             cfg,
		indexDimensions: cfg.VectorStore.Dimensions,
	}
}

// Embedder wraps a TextEmbedder and reconciles the model's native output
// width with the index width. The model client is expensive to set up, so
// it is initialized at most once per process and shared across requests.
type Embedder struct {
	cfg             *config.Config
	indexDimensions int

	once    sync.Once
	client  models.TextEmbedder
	initErr error
}

func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewBadRequestError(EmptyEmbeddingTextError)
	}

	e.once.Do(func() {
		log.Infof("Loading %s embedding client", e.cfg.Embeddings.Service)
		e.client, e.initErr = newTextEmbedder(e.cfg)
	})
	if e.initErr != nil {
		return nil, models.NewEmbeddingError("embedding client initialization failed", e.initErr)
	}

	embeddings, err := e.client.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, models.NewEmbeddingError("embedding request failed", err)
	}
	if len(embeddings) != 1 {
		return nil, models.NewEmbeddingError(
			fmt.Sprintf("expected 1 embedding, got %d", len(embeddings)), nil,
		)
	}

	padded, err := PadVector(embeddings[0], e.indexDimensions)
	if err != nil {
		return nil, models.NewEmbeddingError("embedding width reconciliation failed", err)
	}
	return padded, nil
}

func (e *Embedder) Dimensions() int {
	return e.indexDimensions
}

// PadVector widens vec to width by zero-filling the tail. The padded
// vector is not renormalized: its magnitude changes, but vectors already
// stored in the index were padded the same way and must stay comparable.
// A vector wider than the index is an error; silently truncating would
// discard model output.
func PadVector(vec []float32, width int) ([]float32, error) {
	if len(vec) == width {
		return vec, nil
	}
	if len(vec) > width {
		return nil, fmt.Errorf(
			"embedding width %d exceeds index width %d",
			len(vec),
			width,
		)
	}

	padded := make([]float32, width)
	copy(padded, vec)
	return padded, nil
}

func newTextEmbedder(cfg *config.Config) (models.TextEmbedder, error) {
	switch cfg.Embeddings.Service {
	case "local", "":
		return NewLocalEmbedder(cfg)
	case "openai":
		return NewOpenAIEmbedder(cfg)
	default:
		return nil, fmt.Errorf("invalid embeddings service: %s", cfg.Embeddings.Service)
	}
}
