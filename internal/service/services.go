package service

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
)

type Services struct {
	RegistrationService RegistrationService
	AuthService         AuthService
	SessionGuard        SessionGuard
	LogoutService       LogoutService
	DashboardService    DashboardService
}

// NewServices wires every service over storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	validator := validators.NewFormValidator()
	guard := NewSessionGuard(storages.SessionStore, logger)

	registration := NewRegistrationValidationService(validator).
		Wrap(NewRegistrationService(storages.UserRepository, storages.Transactor, hasher, logger))

	auth := NewAuthService(AuthDeps{
		Users:     storages.UserRepository,
		Sessions:  storages.SessionStore,
		Guard:     guard,
		Hasher:    hasher,
		Tokens:    crypto.NewRandomTokenGenerator(),
		Validator: validator,
	}, cfg.SessionLifetime, logger)

	return &Services{
		RegistrationService: registration,
		AuthService:         auth,
		SessionGuard:        guard,
		LogoutService:       NewLogoutService(storages.SessionStore, logger),
		DashboardService:    NewDashboardService(storages.UserRepository, logger),
	}, nil
}
