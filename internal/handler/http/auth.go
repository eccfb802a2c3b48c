package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/models"
)

// maxFormBytes bounds the body of a form submission.
const maxFormBytes = 64 << 10

const (
	routeIndex     = "/"
	routeSignup    = "/signup"
	routeLogin     = "/login"
	routeDashboard = "/dashboard"
	routeLogout    = "/logout"
)

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageSignup, http.StatusOK, view{Title: "Sign Up"})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid form was passed")
		status := badFormStatus(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	form := models.RegistrationForm{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	if _, err := h.services.RegistrationService.Register(ctx, form); err != nil {
		v := view{
			Title: "Sign Up",
			Error: messageFromError(err, app.MsgRegistrationFailed),
			Form: formValues{
				Username: strings.TrimSpace(form.Username),
				Email:    strings.TrimSpace(form.Email),
			},
		}
		if fe, ok := service.AsFormError(err); ok {
			v.Invalid = invalidFields{
				Username: fe.Has(service.FieldUsername),
				Email:    fe.Has(service.FieldEmail),
			}
		}
		h.render(w, r, pageSignup, statusFromError(err), v)
		return
	}

	// the form is cleared on success
	h.render(w, r, pageSignup, http.StatusOK, view{
		Title:   "Sign Up",
		Success: app.MsgRegistrationSuccess,
	})
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if h.services.SessionGuard.IsAuthenticated(r.Context(), h.cookies.token(r)) {
		http.Redirect(w, r, routeDashboard, http.StatusSeeOther)
		return
	}
	h.render(w, r, pageLogin, http.StatusOK, view{Title: "Login"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := parseForm(w, r); err != nil {
		log.Err(err).Msg("invalid form was passed")
		status := badFormStatus(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	session, err := h.services.AuthService.Login(ctx, creds, h.cookies.token(r))
	if err != nil {
		h.render(w, r, pageLogin, statusFromError(err), view{
			Title: "Login",
			Error: messageFromError(err, app.MsgLoginFailed),
		})
		return
	}

	h.cookies.set(w, session.Token)
	http.Redirect(w, r, routeDashboard, http.StatusSeeOther)
}

// logout always clears the cookie and sends the client to the login page,
// even when the server-side session could not be deleted.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LogoutService.Logout(r.Context(), h.cookies.token(r)); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("logout did not delete the session")
	}

	h.cookies.clear(w)
	http.Redirect(w, r, routeLogin, http.StatusSeeOther)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	if h.services.SessionGuard.IsAuthenticated(r.Context(), h.cookies.token(r)) {
		http.Redirect(w, r, routeDashboard, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, routeLogin, http.StatusSeeOther)
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

func badFormStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
