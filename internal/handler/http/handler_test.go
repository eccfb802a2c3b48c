package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCookieName = "sid"

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

type handlerMocks struct {
	registration *mock.MockRegistrationService
	auth         *mock.MockAuthService
	guard        *mock.MockSessionGuard
	logout       *mock.MockLogoutService
	dashboard    *mock.MockDashboardService
}

// newTestRouter returns the full router over mocked services.
func newTestRouter(t *testing.T, ctrl *gomock.Controller, pinger Pinger) (http.Handler, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		registration: mock.NewMockRegistrationService(ctrl),
		auth:         mock.NewMockAuthService(ctrl),
		guard:        mock.NewMockSessionGuard(ctrl),
		logout:       mock.NewMockLogoutService(ctrl),
		dashboard:    mock.NewMockDashboardService(ctrl),
	}
	services := &service.Services{
		RegistrationService: m.registration,
		AuthService:         m.auth,
		SessionGuard:        m.guard,
		LogoutService:       m.logout,
		DashboardService:    m.dashboard,
	}
	if pinger == nil {
		pinger = fakePinger{}
	}

	h, err := NewHandler(services, pinger, config.App{
		SessionCookieName: testCookieName,
		SessionLifetime:   time.Hour,
	}, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	return h.Init(), m
}

func newFormRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", testCookieName)
	return nil
}

func notAuthenticated() error {
	return &service.FormError{Kind: service.ErrNotAuthenticated}
}

var aliceSession = models.SessionContext{Token: "tok-alice", UserID: 1, Username: "alice"}

var errBoom = errors.New("boom")
