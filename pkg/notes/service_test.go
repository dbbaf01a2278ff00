package notes

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemachandra9899/Bacckend/pkg/models"
	"github.com/Hemachandra9899/Bacckend/pkg/testutils"
)

type fakeEmbedder struct {
	width     int
	embedded  []string
	callCount int
}

func (f *fakeEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewBadRequestError("text to embed must not be empty")
	}
	f.callCount++
	f.embedded = append(f.embedded, text)
	vec := make([]float32, f.width)
	vec[0] = 1
	return vec, nil
}

func (f *fakeEmbedder) Dimensions() int { return f.width }

type upsertCall struct {
	id       string
	values   []float32
	metadata models.NoteMetadata
}

type queryCall struct {
	vector []float32
	topK   int
}

type fakeVectorStore struct {
	upserts      []upsertCall
	queries      []queryCall
	queryMatches []models.SearchMatch
	stored       map[string]*models.Note
	deleted      []string
}

func (f *fakeVectorStore) Upsert(
	_ context.Context,
	id string,
	values []float32,
	metadata models.NoteMetadata,
) error {
	f.upserts = append(f.upserts, upsertCall{id: id, values: values, metadata: metadata})
	return nil
}

func (f *fakeVectorStore) Query(
	_ context.Context,
	vector []float32,
	topK int,
	_ bool,
) ([]models.SearchMatch, error) {
	f.queries = append(f.queries, queryCall{vector: vector, topK: topK})
	return f.queryMatches, nil
}

func (f *fakeVectorStore) Fetch(_ context.Context, id string) (*models.Note, error) {
	note, ok := f.stored[id]
	if !ok {
		return nil, models.NewNotFoundError("note " + id)
	}
	return note, nil
}

func (f *fakeVectorStore) DeleteOne(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.stored, id)
	return nil
}

func (f *fakeVectorStore) DescribeIndexStats(_ context.Context) (*models.IndexStats, error) {
	return &models.IndexStats{Dimension: 1536}, nil
}

type completeCall struct {
	systemPrompt string
	userPrompt   string
	temperature  float32
	maxTokens    int
}

type fakeChatLLM struct {
	answer string
	calls  []completeCall
}

func (f *fakeChatLLM) Complete(
	_ context.Context,
	systemPrompt string,
	userPrompt string,
	temperature float32,
	maxTokens int,
) (string, error) {
	f.calls = append(f.calls, completeCall{
		systemPrompt: systemPrompt,
		userPrompt:   userPrompt,
		temperature:  temperature,
		maxTokens:    maxTokens,
	})
	return f.answer, nil
}

func (f *fakeChatLLM) GetTokenCount(text string) (int, error) {
	return len(strings.Fields(text)), nil
}

func newTestService(
	embedder *fakeEmbedder,
	store *fakeVectorStore,
	llm *fakeChatLLM,
) *NoteService {
	return NewNoteService(&models.AppState{
		LLM:         llm,
		Embeddings:  embedder,
		VectorStore: store,
		Config:      testutils.NewTestConfig(),
	})
}

func TestCreateNote(t *testing.T) {
	embedder := &fakeEmbedder{width: 1536}
	store := &fakeVectorStore{}
	service := newTestService(embedder, store, &fakeChatLLM{})

	title, description := testutils.FakeNoteFields()

	note, err := service.CreateNote(context.Background(), title, description)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(note.ID, "note_"))
	assert.Equal(t, title, note.Title)
	assert.Equal(t, description, note.Description)

	// The embedded text is the concatenated title and description.
	require.Len(t, embedder.embedded, 1)
	assert.Equal(t, title+" "+description, embedder.embedded[0])

	require.Len(t, store.upserts, 1)
	assert.Equal(t, note.ID, store.upserts[0].id)
	assert.Len(t, store.upserts[0].values, 1536)
	assert.Equal(t, title, store.upserts[0].metadata.Title)
	assert.Equal(t, description, store.upserts[0].metadata.Description)

	_, err = time.Parse(time.RFC3339, store.upserts[0].metadata.CreatedAt)
	assert.NoError(t, err)
}

func TestCreateNoteIDsAreUnique(t *testing.T) {
	service := newTestService(&fakeEmbedder{width: 1536}, &fakeVectorStore{}, &fakeChatLLM{})

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		note, err := service.CreateNote(context.Background(), "same title", "same description")
		require.NoError(t, err)
		assert.False(t, seen[note.ID], "duplicate note ID %s", note.ID)
		seen[note.ID] = true
	}
}

func TestCreateNoteValidation(t *testing.T) {
	testCases := []struct {
		name        string
		title       string
		description string
	}{
		{"empty title", "", "description"},
		{"empty description", "title", ""},
		{"whitespace title", "   ", "description"},
		{"whitespace description", "title", " \t "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := &fakeEmbedder{width: 1536}
			store := &fakeVectorStore{}
			service := newTestService(embedder, store, &fakeChatLLM{})

			_, err := service.CreateNote(context.Background(), tc.title, tc.description)
			assert.ErrorIs(t, err, models.ErrBadRequest)

			// Validation fails before any external call is made.
			assert.Zero(t, embedder.callCount)
			assert.Empty(t, store.upserts)
		})
	}
}

func TestSearchNotesNoMatches(t *testing.T) {
	embedder := &fakeEmbedder{width: 1536}
	store := &fakeVectorStore{queryMatches: []models.SearchMatch{}}
	llm := &fakeChatLLM{answer: " I couldn't find any notes about that. Could you rephrase? "}
	service := newTestService(embedder, store, llm)

	answer, err := service.SearchNotes(context.Background(), "quantum chromodynamics")
	require.NoError(t, err)
	assert.Equal(t, "I couldn't find any notes about that. Could you rephrase?", answer)

	require.Len(t, llm.calls, 1)
	call := llm.calls[0]
	assert.Equal(t, noMatchSystemPrompt, call.systemPrompt)
	assert.Contains(t, call.userPrompt, `"quantum chromodynamics"`)
	assert.Equal(t, noMatchTemperature, call.temperature)
	assert.Equal(t, noMatchMaxTokens, call.maxTokens)
	// No note content is echoed when nothing matched.
	assert.NotContains(t, call.userPrompt, "Title:")
}

func TestSearchNotesWithMatches(t *testing.T) {
	matches := []models.SearchMatch{
		{
			ID:    "note_1_a",
			Score: 0.933,
			Metadata: models.NoteMetadata{
				Title:       "Router",
				Description: "Password is hunter2",
			},
		},
		{
			ID:    "note_2_b",
			Score: 0.5,
			Metadata: models.NoteMetadata{
				Title:       "Desk",
				Description: "Standing desk preset 2 is mine",
			},
		},
	}

	embedder := &fakeEmbedder{width: 1536}
	store := &fakeVectorStore{queryMatches: matches}
	llm := &fakeChatLLM{answer: "My router password is hunter2."}
	service := newTestService(embedder, store, llm)

	answer, err := service.SearchNotes(context.Background(), "what is the wifi password")
	require.NoError(t, err)
	assert.Equal(t, "My router password is hunter2.", answer)

	// Query embedding goes to the store with the configured topK.
	require.Len(t, store.queries, 1)
	assert.Equal(t, 3, store.queries[0].topK)
	assert.Len(t, store.queries[0].vector, 1536)

	require.Len(t, llm.calls, 1)
	call := llm.calls[0]
	assert.Equal(t, answerSystemPrompt, call.systemPrompt)
	assert.Contains(t, call.userPrompt, `"what is the wifi password"`)
	assert.Contains(t, call.userPrompt, FormatMatches(matches))
	assert.Equal(t, answerTemperature, call.temperature)
	assert.Equal(t, answerMaxTokens, call.maxTokens)
}

func TestSearchNotesValidation(t *testing.T) {
	embedder := &fakeEmbedder{width: 1536}
	store := &fakeVectorStore{}
	service := newTestService(embedder, store, &fakeChatLLM{})

	for _, query := range []string{"", "   "} {
		_, err := service.SearchNotes(context.Background(), query)
		assert.ErrorIs(t, err, models.ErrBadRequest)
	}
	assert.Zero(t, embedder.callCount)
	assert.Empty(t, store.queries)
}

func TestFormatMatches(t *testing.T) {
	matches := []models.SearchMatch{
		{
			Score: 0.933,
			Metadata: models.NoteMetadata{
				Title:       "Router",
				Description: "Password is hunter2",
			},
		},
		{
			Score: 0.5,
			Metadata: models.NoteMetadata{
				Title:       "Desk",
				Description: "Standing desk preset 2 is mine",
			},
		},
	}

	expected := "1. Title: \"Router\"\n" +
		"   Description: \"Password is hunter2\"\n" +
		"   Relevance: 93.3%\n" +
		"\n" +
		"2. Title: \"Desk\"\n" +
		"   Description: \"Standing desk preset 2 is mine\"\n" +
		"   Relevance: 50.0%"

	assert.Equal(t, expected, FormatMatches(matches))
}

func TestListNotes(t *testing.T) {
	matches := []models.SearchMatch{
		{
			ID:    "note_1_a",
			Score: 0.4,
			Metadata: models.NoteMetadata{
				Title:       "Router",
				Description: "Password is hunter2",
				CreatedAt:   "2024-05-01T10:00:00Z",
			},
		},
	}

	store := &fakeVectorStore{queryMatches: matches}
	service := newTestService(&fakeEmbedder{width: 1536}, store, &fakeChatLLM{})

	noteList, err := service.ListNotes(context.Background(), 5)
	require.NoError(t, err)

	// The probe vector has the index width and the limit is passed through.
	require.Len(t, store.queries, 1)
	assert.Len(t, store.queries[0].vector, 1536)
	assert.Equal(t, 5, store.queries[0].topK)

	require.Len(t, noteList, 1)
	assert.Equal(t, "note_1_a", noteList[0].ID)
	assert.Equal(t, "Router", noteList[0].Title)
	assert.Equal(t, 0.4, noteList[0].Score)
	assert.Equal(t, 2024, noteList[0].CreatedAt.Year())
}

func TestListNotesDefaultLimit(t *testing.T) {
	store := &fakeVectorStore{}
	service := newTestService(&fakeEmbedder{width: 1536}, store, &fakeChatLLM{})

	_, err := service.ListNotes(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, store.queries, 1)
	assert.Equal(t, 10, store.queries[0].topK)
}

func TestDeleteNote(t *testing.T) {
	store := &fakeVectorStore{
		stored: map[string]*models.Note{
			"note_1_a": {ID: "note_1_a", Title: "Router"},
		},
	}
	service := newTestService(&fakeEmbedder{width: 1536}, store, &fakeChatLLM{})

	deletedID, err := service.DeleteNote(context.Background(), "note_1_a")
	require.NoError(t, err)
	assert.Equal(t, "note_1_a", deletedID)
	assert.Equal(t, []string{"note_1_a"}, store.deleted)
}

func TestDeleteNoteNotFound(t *testing.T) {
	store := &fakeVectorStore{stored: map[string]*models.Note{}}
	service := newTestService(&fakeEmbedder{width: 1536}, store, &fakeChatLLM{})

	_, err := service.DeleteNote(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// The delete call is never issued for a note that doesn't exist.
	assert.Empty(t, store.deleted)
}

func TestDeleteNoteTwice(t *testing.T) {
	store := &fakeVectorStore{
		stored: map[string]*models.Note{
			"note_1_a": {ID: "note_1_a"},
		},
	}
	service := newTestService(&fakeEmbedder{width: 1536}, store, &fakeChatLLM{})

	_, err := service.DeleteNote(context.Background(), "note_1_a")
	require.NoError(t, err)

	// Fetch-then-delete semantics: the second delete is a 404, not a
	// silent success.
	_, err = service.DeleteNote(context.Background(), "note_1_a")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteNoteValidation(t *testing.T) {
	store := &fakeVectorStore{}
	service := newTestService(&fakeEmbedder{width: 1536}, store, &fakeChatLLM{})

	_, err := service.DeleteNote(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrBadRequest)
	assert.Empty(t, store.deleted)
}
