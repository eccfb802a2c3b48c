package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get(routeIndex, h.index)
		r.Get(routeSignup, h.signupForm)
		r.Post(routeSignup, h.signup)
		r.Get(routeLogin, h.loginForm)
		r.Post(routeLogin, h.login)
		r.Get(routeLogout, h.logout)
		r.Post(routeLogout, h.logout)

		r.Get("/healthz", h.health)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get(routeDashboard, h.dashboard)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
