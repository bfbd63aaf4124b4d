package handler

import (
	"errors"
	"net/http"

	"github.com/pshams/tradebook/internal/model"
)

// statusFromError maps the error taxonomy onto HTTP statuses: validation
// failures are the caller's fault, missing records are not-found, anything
// else is a server fault.
func statusFromError(err error) int {
	switch {
	case model.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
