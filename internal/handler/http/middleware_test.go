package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- CheckHTTPMethod ----

func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET registered", method: http.MethodGet, path: "/items", expectedStatus: http.StatusOK},
		{name: "POST registered", method: http.MethodPost, path: "/items", expectedStatus: http.StatusCreated},
		{name: "DELETE not registered", method: http.MethodDelete, path: "/items", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reused from request", incoming: "my-custom-trace-id"},
		{name: "generated", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromCtx *zerolog.Logger
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fromCtx = zerolog.Ctx(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := serve(h.withTraceID(next), req)

			got := rec.Header().Get(traceIDHeader)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			require.NotNil(t, fromCtx)
		})
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/signup?x=1", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	serve(h.withLogging(next), req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/signup"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":5`)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rw.statusCode())

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusTeapot, rw.statusCode())
}

// ---- withSecurityHeaders ----

func TestSecurityHeadersOnEveryRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newTestRouter(t, ctrl, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/signup", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// ---- Recoverer ----

func TestPanicIsIsolatedPerRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl, nil)

	m.guard.EXPECT().IsAuthenticated(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) bool {
		panic("guard exploded")
	})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
