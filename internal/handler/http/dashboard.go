package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Err(ErrNoSessionInContext).Msg("dashboard reached without session")
		http.Redirect(w, r, routeLogin, http.StatusSeeOther)
		return
	}

	utils.NoStore(w)

	users, err := h.services.DashboardService.ListUsers(ctx, session)
	v := view{
		Title:   "Dashboard",
		Session: session,
		Users:   users,
		Empty:   app.MsgNoUsersFound,
	}
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			http.Redirect(w, r, routeLogin, http.StatusSeeOther)
			return
		}
		v.Error = messageFromError(err, app.MsgDashboardUnavailable)
		h.render(w, r, pageDashboard, statusFromError(err), v)
		return
	}

	h.render(w, r, pageDashboard, http.StatusOK, v)
}
