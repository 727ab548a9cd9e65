package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/legitimatebusiness/todo/internal/domain"
	"github.com/legitimatebusiness/todo/internal/platform/logger"
)

// getPathID extracts a todo ID from the URL path parameters.
// It returns a validation error wrapping domain.ErrInvalidID when the
// parameter is not a positive integer.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	if err := domain.ValidateTodoID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// handlePathID extracts the todo ID and writes a 400 response when it is
// invalid. The boolean is false when a response has already been written.
func handlePathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, "id")
	if err != nil {
		logger.FromContext(r.Context()).Debug("invalid todo id",
			slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}
