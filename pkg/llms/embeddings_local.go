package llms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

const localEmbedderTimeout = 30 * time.Second

var _ models.TextEmbedder = &LocalEmbedder{}

// LocalEmbedder posts texts to a local sentence-transformer inference
// server. The server computes mean-pooled, normalized embeddings at the
// model's native width.
type LocalEmbedder struct {
	serverURL string
	model     string
	client    *http.Client
}

func NewLocalEmbedder(cfg *config.Config) (*LocalEmbedder, error) {
	if cfg.Embeddings.ServerURL == "" {
		return nil, errors.New("embeddings.server_url must be set for the local embeddings service")
	}
	return &LocalEmbedder{
		serverURL: cfg.Embeddings.ServerURL,
		model:     cfg.Embeddings.Model,
		client:    &http.Client{Timeout: localEmbedderTimeout},
	}, nil
}

type embeddingRecord struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding,omitempty"`
}

type embeddingCollection struct {
	Model      string            `json:"model,omitempty"`
	Embeddings []embeddingRecord `json:"embeddings"`
}

func (le *LocalEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	records := make([]embeddingRecord, len(texts))
	for i, text := range texts {
		records[i] = embeddingRecord{Text: text}
	}
	collection := embeddingCollection{
		Model:      le.model,
		Embeddings: records,
	}
	jsonBody, err := json.Marshal(collection)
	if err != nil {
		log.Error("Error marshaling request body:", err)
		return nil, err
	}

	url := le.serverURL + "/embeddings"

	var bodyBytes []byte
	// Retry POST request to the inference server 3 times with 1 second delay.
	err = retry.Do(
		func() error {
			var err error
			bodyBytes, err = le.makeEmbedRequest(ctx, url, jsonBody)
			if err != nil {
				return err
			}
			return nil
		},
		retry.Attempts(3),
		retry.Delay(time.Second),
	)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(bodyBytes, &collection)
	if err != nil {
		log.Errorf("Error unmarshaling response body: %s", err)
		return nil, err
	}

	m := make([][]float32, len(collection.Embeddings))
	for i := range collection.Embeddings {
		m[i] = collection.Embeddings[i].Embedding
	}

	return m, nil
}

func (le *LocalEmbedder) makeEmbedRequest(ctx context.Context, url string, jsonBody []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := le.client.Do(req)
	if err != nil {
		log.Error("Error making POST request:", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorString := fmt.Sprintf(
			"Error making POST request: %d - %s",
			resp.StatusCode,
			resp.Status,
		)
		log.Error(errorString)
		return nil, errors.New(errorString)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Error reading response body:", err)
		return nil, err
	}

	return bodyBytes, nil
}
