package vectorstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Hemachandra9899/Bacckend/config"
	"github.com/Hemachandra9899/Bacckend/internal"
	"github.com/Hemachandra9899/Bacckend/pkg/llms"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

const PineconeAPIKeyNotSetError = "PINECONE_API_KEY is not set" //nolint:gosec

const pineconeAPITimeout = 30 * time.Second
const maxPineconeRequestAttempts = 3

var log = internal.GetLogger()

var _ models.VectorStore = &PineconeVectorStore{}

// PineconeVectorStore is a thin client for the Pinecone index data plane.
// All persisted state lives in the index; this client holds none.
type PineconeVectorStore struct {
	indexHost string
	indexName string
	apiKey    string
	client    *http.Client
}

func NewPineconeVectorStore(cfg *config.Config) (*PineconeVectorStore, error) {
	if cfg.VectorStore.APIKey == "" {
		return nil, errors.New(PineconeAPIKeyNotSetError)
	}
	if cfg.VectorStore.IndexHost == "" {
		return nil, errors.New("vector_store.index_host must be set")
	}

	retryableHTTPClient := llms.NewRetryableHTTPClient(
		maxPineconeRequestAttempts,
		pineconeAPITimeout,
	)

	return &PineconeVectorStore{
		indexHost: cfg.VectorStore.IndexHost,
		indexName: cfg.VectorStore.IndexName,
		apiKey:    cfg.VectorStore.APIKey,
		client:    retryableHTTPClient.StandardClient(),
	}, nil
}

type upsertVector struct {
	ID       string              `json:"id"`
	Values   []float32           `json:"values"`
	Metadata models.NoteMetadata `json:"metadata"`
}

type upsertRequest struct {
	Vectors []upsertVector `json:"vectors"`
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
	IncludeValues   bool      `json:"includeValues"`
}

type queryResponse struct {
	Matches []models.SearchMatch `json:"matches"`
}

type fetchResponse struct {
	Vectors map[string]struct {
		ID       string              `json:"id"`
		Metadata models.NoteMetadata `json:"metadata"`
	} `json:"vectors"`
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

type indexStatsResponse struct {
	Dimension        int     `json:"dimension"`
	IndexFullness    float64 `json:"indexFullness"`
	TotalRecordCount int     `json:"totalRecordCount"`
	// Older data planes report totalVectorCount instead.
	TotalVectorCount int `json:"totalVectorCount"`
}

func (ps *PineconeVectorStore) Upsert(
	ctx context.Context,
	id string,
	values []float32,
	metadata models.NoteMetadata,
) error {
	request := upsertRequest{
		Vectors: []upsertVector{{ID: id, Values: values, Metadata: metadata}},
	}

	_, err := ps.post(ctx, "/vectors/upsert", request)
	if err != nil {
		return models.NewStoreUnavailableError("upsert", err)
	}
	return nil
}

func (ps *PineconeVectorStore) Query(
	ctx context.Context,
	vector []float32,
	topK int,
	includeMetadata bool,
) ([]models.SearchMatch, error) {
	request := queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: includeMetadata,
		IncludeValues:   false,
	}

	body, err := ps.post(ctx, "/query", request)
	if err != nil {
		return nil, models.NewStoreUnavailableError("query", err)
	}

	var response queryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, models.NewStoreUnavailableError("query", err)
	}

	// The store returns matches descending by score. Preserve its order.
	return response.Matches, nil
}

func (ps *PineconeVectorStore) Fetch(ctx context.Context, id string) (*models.Note, error) {
	path := "/vectors/fetch?ids=" + url.QueryEscape(id)
	body, err := ps.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, models.NewStoreUnavailableError("fetch", err)
	}

	var response fetchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, models.NewStoreUnavailableError("fetch", err)
	}

	record, ok := response.Vectors[id]
	if !ok {
		return nil, models.NewNotFoundError("note " + id)
	}

	note := &models.Note{
		ID:          record.ID,
		Title:       record.Metadata.Title,
		Description: record.Metadata.Description,
	}
	if createdAt, err := time.Parse(time.RFC3339, record.Metadata.CreatedAt); err == nil {
		note.CreatedAt = createdAt
	}
	return note, nil
}

func (ps *PineconeVectorStore) DeleteOne(ctx context.Context, id string) error {
	request := deleteRequest{IDs: []string{id}}

	_, err := ps.post(ctx, "/vectors/delete", request)
	if err != nil {
		return models.NewStoreUnavailableError("delete", err)
	}
	return nil
}

func (ps *PineconeVectorStore) DescribeIndexStats(ctx context.Context) (*models.IndexStats, error) {
	body, err := ps.post(ctx, "/describe_index_stats", struct{}{})
	if err != nil {
		return nil, models.NewStoreUnavailableError("describe_index_stats", err)
	}

	var response indexStatsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, models.NewStoreUnavailableError("describe_index_stats", err)
	}

	recordCount := response.TotalRecordCount
	if recordCount == 0 {
		recordCount = response.TotalVectorCount
	}

	return &models.IndexStats{
		Dimension:        response.Dimension,
		TotalRecordCount: recordCount,
		IndexFullness:    response.IndexFullness,
	}, nil
}

// IndexName returns the configured index name. Used for startup reporting.
func (ps *PineconeVectorStore) IndexName() string {
	return ps.indexName
}

func (ps *PineconeVectorStore) post(ctx context.Context, path string, payload any) ([]byte, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return ps.do(ctx, http.MethodPost, path, jsonBody)
}

func (ps *PineconeVectorStore) do(
	ctx context.Context,
	method string,
	path string,
	jsonBody []byte,
) ([]byte, error) {
	var bodyReader io.Reader
	if jsonBody != nil {
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, ps.indexHost+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Api-Key", ps.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ps.client.Do(req)
	if err != nil {
		log.Errorf("Error making %s request to %s: %s", method, path, err)
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"pinecone request to %s failed: %d - %s",
			path,
			resp.StatusCode,
			string(bodyBytes),
		)
	}

	return bodyBytes, nil
}
