package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

// Pinger reports whether the credential store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger

	pages   *pages
	cookies cookieSettings

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, app config.App, server config.Server, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		pinger:         pinger,
		pages:          pages,
		cookies:        newCookieSettings(app),
		requestTimeout: server.RequestTimeout,
		logger:         logger,
	}, nil
}
