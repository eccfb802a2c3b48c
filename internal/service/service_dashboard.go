package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

type dashboardService struct {
	users  store.UserRepository
	logger *logger.Logger
}

func NewDashboardService(users store.UserRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		users:  users,
		logger: logger,
	}
}

// ListUsers refuses to touch the store for an unauthenticated session.
func (s *dashboardService) ListUsers(ctx context.Context, session models.SessionContext) ([]models.UserListing, error) {
	if !session.IsAuthenticated() {
		return nil, newFormError(ErrNotAuthenticated, FieldNone, "", nil)
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dashboardService.ListUsers").Msg("listing users failed")
		return nil, newFormError(ErrStorage, FieldStorage, app.MsgDashboardUnavailable, err)
	}

	listing := make([]models.UserListing, 0, len(users))
	for _, u := range users {
		listing = append(listing, u.Listing())
	}
	return listing, nil
}
