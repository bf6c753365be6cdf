package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/BusinessFinder/pkg/model"
)

var ErrInvalidInput = errors.New("invalid request body")

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("error writing response", zap.Int("status", status), zap.Error(err))
	}
}

// writeError maps err onto a status code. Anything unclassified is logged and reported as failure.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, failure string) {
	var validationErr *model.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, logger, http.StatusNotFound, errorResponse{Error: "Business not found"})
	case errors.Is(err, model.ErrInvalidArgument), errors.Is(err, model.ErrValidation):
		writeJSON(w, logger, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Error(failure, zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, logger, http.StatusInternalServerError, errorResponse{Error: failure})
	}
}
