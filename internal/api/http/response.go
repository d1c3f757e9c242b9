package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"borrowbuddy-backend/internal/ledger"
	"borrowbuddy-backend/internal/logger"
	"borrowbuddy-backend/internal/repository"
	"borrowbuddy-backend/internal/security"
	"borrowbuddy-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response body", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500 with a generic message so internals never leak
// to clients.
func writeError(w http.ResponseWriter, err error) {
	var missing *ledger.MissingFieldError
	var invalid *ledger.InvalidFieldError

	switch {
	case errors.As(err, &missing),
		errors.As(err, &invalid),
		errors.Is(err, ledger.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidGoogleToken),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
	case errors.Is(err, service.ErrEmailInUse),
		errors.Is(err, service.ErrAlreadySettled):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrGoogleSignInUnsupported):
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrUnavailable):
		logger.Error("Backing store unavailable", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service temporarily unavailable"})
	default:
		logger.Error("Unhandled error in request", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
