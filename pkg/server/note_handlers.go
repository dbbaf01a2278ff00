package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Hemachandra9899/Bacckend/pkg/models"
	"github.com/Hemachandra9899/Bacckend/pkg/notes"
)

var validate = validator.New()

type CreateNoteRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateNoteResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Note    *models.Note `json:"note"`
}

type ListNotesResponse struct {
	Success bool                   `json:"success"`
	Count   int                    `json:"count"`
	Notes   []models.NoteWithScore `json:"notes"`
}

type DeleteNoteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DeletedID string `json:"deletedId"`
}

type HealthCheckResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}

// CreateNoteHandler embeds and stores a new note.
func CreateNoteHandler(appState *models.AppState) http.HandlerFunc {
	noteService := notes.NewNoteService(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		var request CreateNoteRequest
		if err := decodeJSON(r, &request); err != nil {
			renderError(w, appState, models.NewBadRequestError(notes.MissingNoteFieldsError))
			return
		}
		if err := validate.Struct(request); err != nil {
			renderError(w, appState, models.NewBadRequestError(notes.MissingNoteFieldsError))
			return
		}

		note, err := noteService.CreateNote(r.Context(), request.Title, request.Description)
		if err != nil {
			renderError(w, appState, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := encodeJSON(w, CreateNoteResponse{
			Success: true,
			Message: "Note saved successfully",
			Note:    note,
		}); err != nil {
			log.Error(err)
		}
	}
}

// SearchNotesHandler answers a query from stored notes. The response is
// the generated answer as plain text, not JSON.
func SearchNotesHandler(appState *models.AppState) http.HandlerFunc {
	noteService := notes.NewNoteService(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")

		answer, err := noteService.SearchNotes(r.Context(), query)
		if err != nil {
			renderError(w, appState, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(answer)); err != nil {
			log.Error(err)
		}
	}
}

// ListNotesHandler returns a best-effort sample of stored notes.
func ListNotesHandler(appState *models.AppState) http.HandlerFunc {
	noteService := notes.NewNoteService(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := extractQueryStringValueToInt(r, "limit")
		if err != nil {
			renderError(w, appState, models.NewBadRequestError("limit must be an integer"))
			return
		}

		noteList, err := noteService.ListNotes(r.Context(), limit)
		if err != nil {
			renderError(w, appState, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, ListNotesResponse{
			Success: true,
			Count:   len(noteList),
			Notes:   noteList,
		}); err != nil {
			log.Error(err)
		}
	}
}

// DeleteNoteHandler deletes a note by ID.
func DeleteNoteHandler(appState *models.AppState) http.HandlerFunc {
	noteService := notes.NewNoteService(appState)
	return func(w http.ResponseWriter, r *http.Request) {
		noteID := chi.URLParam(r, "noteId")

		deletedID, err := noteService.DeleteNote(r.Context(), noteID)
		if err != nil {
			renderError(w, appState, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, DeleteNoteResponse{
			Success:   true,
			Message:   "Note deleted successfully",
			DeletedID: deletedID,
		}); err != nil {
			log.Error(err)
		}
	}
}

// HealthCheckHandler reports service status and the available endpoints.
func HealthCheckHandler(_ *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, HealthCheckResponse{
			Success:   true,
			Message:   "Second Brain API is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Endpoints: map[string]string{
				"createNote":  "POST /api/note",
				"searchNotes": "GET /api/getnotes?query=your_search",
				"listNotes":   "GET /notes?limit=10",
				"deleteNote":  "DELETE /notes/:id",
			},
		}); err != nil {
			log.Error(err)
		}
	}
}

// NotFoundHandler echoes the unmatched path in a JSON 404.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		if err := encodeJSON(w, struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
			Path    string `json:"path"`
		}{
			Success: false,
			Message: "Route not found",
			Path:    r.URL.Path,
		}); err != nil {
			log.Error(err)
		}
	}
}
