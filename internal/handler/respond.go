package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dinehub/internal/domain"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeError maps the domain error taxonomy onto status codes in one place.
// Anything unrecognized is a persistence failure and leaks no detail.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err):
		writeProblem(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrBadSignature):
		writeProblem(w, http.StatusBadRequest, "invalid_signature", "signature verification failed")
	case errors.Is(err, domain.ErrConflict):
		writeProblem(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "not_found", "resource not found")
	default:
		h.lg.Error("request_failed", err, nil)
		writeProblem(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
