package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storeapi/internal/service"
)

// errorResponse is the JSON body of every failed request: a human-readable
// message, plus field-level details for validation failures.
type errorResponse struct {
	Message string               `json:"message"`
	Fields  []service.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeServiceError maps service errors onto HTTP statuses. Validation and
// credential failures are client errors; restrict-delete conflicts are 409;
// anything else is an internal failure that gets logged, not echoed.
func writeServiceError(logger *zap.SugaredLogger, w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "validation failed", Fields: vErr.Fields})
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "cannot delete: referenced by existing records")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, service.ErrInvalidCredentials.Error())
	default:
		logger.Errorw("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parsePage reads the page and pageSize query parameters. page is optional
// (1-based); pageSize falls back to the endpoint's default. Range checks
// are left to service.Page.Validate.
func parsePage(r *http.Request, defaultSize int) (service.Page, error) {
	page := service.Page{Size: defaultSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, errors.New("page must be an integer")
		}
		page.Number = &n
	}
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return page, errors.New("pageSize must be an integer")
		}
		page.Size = n
	}
	return page, nil
}
