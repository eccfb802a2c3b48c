package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

// Storages aggregates every storage dependency of the service layer.
type Storages struct {
	UserRepository UserRepository
	SessionStore   SessionStore
	Transactor     Transactor

	// DB is the credential store connection, used for migrations and health
	// checks.
	DB *DB

	// SweepSessions is false when the session backend expires entries on its
	// own.
	SweepSessions bool

	redis *redis.Client
}

// NewStorages connects the configured credential store and session backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		Transactor:     db,
		DB:             db,
	}

	switch cfg.Sessions.Backend {
	case config.SessionsBackendDB:
		storages.SessionStore = NewSessionRepository(db, log)
		storages.SweepSessions = true
	case config.SessionsBackendMemory:
		storages.SessionStore = NewMemorySessionStore()
		storages.SweepSessions = true
	case config.SessionsBackendRedis:
		rdb, err := NewConnectRedis(ctx, cfg.Sessions, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.redis = rdb
		storages.SessionStore = NewRedisSessionStore(rdb, log)
	default:
		_ = db.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionBackend, cfg.Sessions.Backend)
	}

	return storages, nil
}

func connectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Ping checks that the credential store and, if used, Redis are reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return err
	}
	if s.redis != nil {
		return s.redis.Ping(ctx).Err()
	}
	return nil
}

// Close releases all connections.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
