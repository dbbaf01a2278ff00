package notes

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hemachandra9899/Bacckend/internal"
	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

const MissingNoteFieldsError = "please provide both title and description"
const MissingQueryError = "query parameter is required"
const MissingNoteIDError = "note ID is required"

var log = internal.GetLogger()

// NoteService orchestrates the embedding provider, vector store, and chat
// client. Every operation is a strictly sequential pipeline; failures
// surface to the caller without compensation.
type NoteService struct {
	appState *models.AppState
}

func NewNoteService(appState *models.AppState) *NoteService {
	return &NoteService{appState: appState}
}

// CreateNote embeds the note text and upserts it into the vector store.
func (ns *NoteService) CreateNote(
	ctx context.Context,
	title string,
	description string,
) (*models.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, models.NewBadRequestError(MissingNoteFieldsError)
	}

	id := generateNoteID()
	createdAt := time.Now().UTC()

	vector, err := ns.appState.Embeddings.EmbedText(ctx, title+" "+description)
	if err != nil {
		return nil, err
	}

	metadata := models.NoteMetadata{
		Title:       title,
		Description: description,
		CreatedAt:   createdAt.Format(time.RFC3339),
	}
	if err := ns.appState.VectorStore.Upsert(ctx, id, vector, metadata); err != nil {
		return nil, err
	}

	log.Infof("Created note %s", id)

	return &models.Note{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   createdAt,
	}, nil
}

// SearchNotes answers a natural-language query from stored notes:
// embed the query, retrieve the top matches, and prompt the chat model
// with them. With no matches the model produces a short "nothing found"
// reply instead; note content is never echoed in that case.
func (ns *NoteService) SearchNotes(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", models.NewBadRequestError(MissingQueryError)
	}

	vector, err := ns.appState.Embeddings.EmbedText(ctx, query)
	if err != nil {
		return "", err
	}

	matches, err := ns.appState.VectorStore.Query(
		ctx,
		vector,
		ns.appState.Config.Notes.TopK,
		true,
	)
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		log.Debugf("No matches for query %q", query)
		return ns.completeNoMatch(ctx, query)
	}

	userPrompt, err := internal.ParsePrompt(answerUserPrompt, promptData{
		Query: query,
		Notes: FormatMatches(matches),
	})
	if err != nil {
		return "", err
	}

	answer, err := ns.appState.LLM.Complete(
		ctx,
		answerSystemPrompt,
		userPrompt,
		answerTemperature,
		answerMaxTokens,
	)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

func (ns *NoteService) completeNoMatch(ctx context.Context, query string) (string, error) {
	userPrompt, err := internal.ParsePrompt(noMatchUserPrompt, promptData{Query: query})
	if err != nil {
		return "", err
	}

	answer, err := ns.appState.LLM.Complete(
		ctx,
		noMatchSystemPrompt,
		userPrompt,
		noMatchTemperature,
		noMatchMaxTokens,
	)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// ListNotes samples up to limit notes by querying the index with a random
// probe vector. The store has no native enumeration, so this is
// best-effort sampling: results may omit or favor records, and must not
// be treated as a complete listing.
func (ns *NoteService) ListNotes(ctx context.Context, limit int) ([]models.NoteWithScore, error) {
	if limit <= 0 {
		limit = ns.appState.Config.Notes.ListLimit
	}

	probe := randomProbeVector(ns.appState.Embeddings.Dimensions())
	matches, err := ns.appState.VectorStore.Query(ctx, probe, limit, true)
	if err != nil {
		return nil, err
	}

	noteList := make([]models.NoteWithScore, len(matches))
	for i, match := range matches {
		noteList[i] = models.NoteWithScore{
			Note: models.Note{
				ID:          match.ID,
				Title:       match.Metadata.Title,
				Description: match.Metadata.Description,
			},
			Score: match.Score,
		}
		if createdAt, err := time.Parse(time.RFC3339, match.Metadata.CreatedAt); err == nil {
			noteList[i].CreatedAt = createdAt
		}
	}

	return noteList, nil
}

// DeleteNote removes the note at id. The store's delete does not report
// whether the record existed, so the note is fetched first to distinguish
// "not found" from "deleted".
func (ns *NoteService) DeleteNote(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", models.NewBadRequestError(MissingNoteIDError)
	}

	if _, err := ns.appState.VectorStore.Fetch(ctx, id); err != nil {
		return "", err
	}

	if err := ns.appState.VectorStore.DeleteOne(ctx, id); err != nil {
		return "", err
	}

	log.Infof("Deleted note %s", id)

	return id, nil
}

// FormatMatches renders matches as numbered blocks for the answer prompt:
//
//	1. Title: "..."
//	   Description: "..."
//	   Relevance: 93.3%
//
// Blocks are separated by a blank line. Matches are rendered in store
// order; relevance is the similarity score as a percentage with one
// decimal place.
func FormatMatches(matches []models.SearchMatch) string {
	blocks := make([]string, len(matches))
	for i, match := range matches {
		blocks[i] = fmt.Sprintf(
			"%d. Title: \"%s\"\n   Description: \"%s\"\n   Relevance: %s%%",
			i+1,
			match.Metadata.Title,
			match.Metadata.Description,
			strconv.FormatFloat(match.Score*100, 'f', 1, 64),
		)
	}
	return strings.Join(blocks, "\n\n")
}

// generateNoteID returns an opaque, globally-unique note ID built from
// the creation time and a random suffix.
func generateNoteID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("note_%d_%s", time.Now().UnixMilli(), suffix)
}

// randomProbeVector returns an arbitrary query vector of the index width.
func randomProbeVector(width int) []float32 {
	probe := make([]float32, width)
	for i := range probe {
		probe[i] = rand.Float32() //nolint:gosec
	}
	return probe
}
