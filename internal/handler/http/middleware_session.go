package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/metrics"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// requireSession lets a request through only when its cookie maps to a live
// session, which it stores in the request context under
// [utils.SessionCtxKey]. Other requests are redirected to the login page
// before the protected handler runs.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		token := h.cookies.token(r)

		session, err := h.services.SessionGuard.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrStorage) {
				log.Err(err).Msg("session guard unavailable")
				http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
				return
			}

			metrics.GuardDenialsTotal.Inc()

			// a stale or forged cookie is dropped
			if token != "" {
				h.cookies.clear(w)
			}
			http.Redirect(w, r, routeLogin, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}
