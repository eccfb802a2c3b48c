package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
)

// cookieSettings holds the attributes of the session cookie. Setting and
// clearing use the same name, path, domain and flags so browsers treat them
// as the same cookie.
type cookieSettings struct {
	name   string
	domain string
	secure bool
	maxAge int
}

func newCookieSettings(cfg config.App) cookieSettings {
	name := cfg.SessionCookieName
	if name == "" {
		name = config.DefaultSessionCookieName
	}
	lifetime := cfg.SessionLifetime
	if lifetime <= 0 {
		lifetime = config.DefaultSessionLifetime
	}
	return cookieSettings{
		name:   name,
		domain: cfg.CookieDomain,
		secure: cfg.SecureCookies,
		maxAge: int(lifetime / time.Second),
	}
}

// token returns the session token sent by the client, or "".
func (c cookieSettings) token(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (c cookieSettings) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, c.cookie(token, c.maxAge, time.Time{}))
}

// clear tells the client to drop the session cookie.
func (c cookieSettings) clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1, time.Unix(0, 0)))
}

func (c cookieSettings) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		Domain:   c.domain,
		MaxAge:   maxAge,
		Expires:  expires,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
