package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusUnprocessableEntity,
	service.ErrConflict:           http.StatusConflict,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrNotAuthenticated:   http.StatusUnauthorized,
	service.ErrStorage:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing text of err, or fallback when err
// carries none.
func messageFromError(err error, fallback string) string {
	if fe, ok := service.AsFormError(err); ok && fe.Message != "" {
		return fe.Message
	}
	return fallback
}
