package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Hemachandra9899/Bacckend/pkg/models"
)

// APIError is the JSON error envelope returned by every route.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Error carries the raw error detail. Only populated outside
	// production mode.
	Error string `json:"error,omitempty"`
}

// extractQueryStringValueToInt extracts a query string value and converts
// it to an int if it is not empty. If the value is empty, it returns 0.
func extractQueryStringValueToInt(r *http.Request, param string) (int, error) {
	p := r.URL.Query().Get(param)
	if p == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(p, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(value), nil
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError maps an error to its HTTP status and writes the JSON error
// envelope. Raw error detail is attached only outside production mode.
func renderError(w http.ResponseWriter, appState *models.AppState, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
		var badRequestErr *models.BadRequestError
		if errors.As(err, &badRequestErr) {
			message = badRequestErr.Message
		}
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
		message = "Note not found"
	}

	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}

	response := APIError{Success: false, Message: message}
	if status == http.StatusInternalServerError && !appState.Config.Server.IsProduction() {
		response.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = encodeJSON(w, response)
}
