package llms

import (
	"context"
	"errors"

	"github.com/avast/retry-go/v4"
	"github.com/sashabaranov/go-openai"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

const EmbeddingsOpenAIAPIKeyNotSetError = "OPENAI_API_KEY is not set" //nolint:gosec

var _ models.TextEmbedder = &OpenAIEmbedder{}

// OpenAIEmbedder embeds texts with the OpenAI embeddings API. The default
// model is text-embedding-ada-002, whose native width matches the index,
// so no padding is applied downstream.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbedder(cfg *config.Config) (*OpenAIEmbedder, error) {
	if cfg.Embeddings.APIKey == "" {
		return nil, errors.New(EmbeddingsOpenAIAPIKeyNotSetError)
	}

	model := openai.EmbeddingModel(cfg.Embeddings.Model)
	if cfg.Embeddings.Model == "" || cfg.Embeddings.Model == "all-MiniLM-L6-v2" {
		// The local model name is not meaningful to the OpenAI API.
		model = openai.AdaEmbeddingV2
	}

	return &OpenAIEmbedder{
		client: openai.NewClient(cfg.Embeddings.APIKey),
		model:  model,
	}, nil
}

func (oe *OpenAIEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	thisCtx, cancel := context.WithTimeout(ctx, ChatAPITimeout)
	defer cancel()

	request := openai.EmbeddingRequest{
		Input: texts,
		Model: oe.model,
	}

	var response openai.EmbeddingResponse
	err := retry.Do(
		func() error {
			var err error
			response, err = oe.client.CreateEmbeddings(thisCtx, request)
			return err
		},
		retry.Attempts(MaxChatAPIRequestAttempts),
		retry.Context(thisCtx),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("Retrying embeddings attempt #%d: %s", n, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	m := make([][]float32, len(response.Data))
	for i := range response.Data {
		m[i] = response.Data[i].Embedding
	}

	return m, nil
}
