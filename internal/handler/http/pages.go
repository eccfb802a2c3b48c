package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageSignup    = "signup.html"
	pageLogin     = "login.html"
	pageDashboard = "dashboard.html"
)

// signupDateLayout renders created_at like "Mar 1, 2026 12:00 PM".
const signupDateLayout = "Jan 2, 2006 3:04 PM"

// view is the data every page template receives. html/template escapes all
// of it for the context it is written in.
type view struct {
	Title string

	// Session drives the navigation bar and the dashboard greeting.
	Session models.SessionContext

	Error   string
	Success string

	// Form holds the non-password values re-rendered after a failed signup.
	Form    formValues
	Invalid invalidFields

	Users []models.UserListing
	Empty string
}

type formValues struct {
	Username string
	Email    string
}

type invalidFields struct {
	Username bool
	Email    bool
}

type pages struct {
	templates map[string]*template.Template
}

func parsePages() (*pages, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format(signupDateLayout) },
	}

	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	p := &pages{templates: make(map[string]*template.Template)}
	for _, name := range []string{pageSignup, pageLogin, pageDashboard} {
		base, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if p.templates[name], err = base.ParseFS(templatesFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	return p, nil
}

// render executes the page into a buffer first so a template error never
// leaves a half-written page behind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, v view) {
	log := logger.FromRequest(r)

	t, ok := h.pages.templates[name]
	if !ok {
		log.Err(ErrUnknownPage).Str("page", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		log.Err(err).Str("page", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
