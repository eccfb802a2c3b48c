// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Defaults applied by [StructuredConfig.setDefaults].
const (
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultSessionLifetime   = 24 * time.Hour
	DefaultSessionCookieName = "gate_session"
	DefaultBcryptCost        = 10
	DefaultSweepInterval     = 10 * time.Minute

	minBcryptCost = 4
	maxBcryptCost = 31
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.SessionLifetime == 0 {
		cfg.App.SessionLifetime = DefaultSessionLifetime
	}
	if cfg.App.SessionCookieName == "" {
		cfg.App.SessionCookieName = DefaultSessionCookieName
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.Sessions.Backend == "" {
		cfg.Storage.Sessions.Backend = SessionsBackendDB
	}
	if cfg.Storage.Sessions.SweepInterval == 0 {
		cfg.Storage.Sessions.SweepInterval = DefaultSweepInterval
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// assembleDSN builds a postgres DSN from host, name, user and password when
// no DSN was configured explicitly.
func (cfg *StructuredConfig) assembleDSN() error {
	db := &cfg.Storage.DB
	if db.DSN != "" || db.Host == "" || db.Driver != DriverPostgres {
		return nil
	}

	if db.Name == "" {
		return fmt.Errorf("%w: database name is required with a database host", ErrInvalidStorageConfigs)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		Host:     db.Host,
		Path:     "/" + db.Name,
		RawQuery: "sslmode=disable",
	}
	if db.User != "" {
		dsn.User = url.UserPassword(db.User, db.Password)
	}
	db.DSN = dsn.String()

	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Sessions.Backend {
	case SessionsBackendDB, SessionsBackendMemory:
	case SessionsBackendRedis:
		if cfg.Storage.Sessions.RedisAddress == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidSessionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSessionConfigs, cfg.Storage.Sessions.Backend)
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.App.SessionLifetime < 0 {
		return fmt.Errorf("%w: negative session lifetime", ErrInvalidAppConfigs)
	}

	if cfg.Storage.Sessions.SweepInterval < 0 {
		return fmt.Errorf("%w: negative sweep interval", ErrInvalidSessionConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}
