// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-auth-gate application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds authentication and session settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential store and the session
	// store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds log level and log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that control password hashing and the session cookie.
type App struct {
	// BcryptCost is the bcrypt work factor used when hashing new passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// SessionLifetime is how long an established session stays valid.
	// Env: APP_SESSION_LIFETIME
	SessionLifetime time.Duration `env:"SESSION_LIFETIME"`

	// SessionCookieName is the name of the cookie anchoring the session.
	// Env: APP_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`

	// SecureCookies marks the session cookie as HTTPS-only.
	// Env: APP_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`

	// CookieDomain is the optional Domain attribute of the session cookie.
	// Env: APP_COOKIE_DOMAIN
	CookieDomain string `env:"COOKIE_DOMAIN"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Sessions selects and configures the session store.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the credential store.
//
// Either DSN is set directly, or it is assembled from Host, Name, User and
// Password when the driver is postgres.
type DB struct {
	// Driver is "postgres" or "sqlite".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. For sqlite it is the database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Host is the database host, optionally with ":port".
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Name is the database name.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// User is the database user.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database password.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`
}

// Sessions configures where session state lives.
type Sessions struct {
	// Backend is "db", "redis" or "memory".
	// Env: STORAGE_SESSIONS_BACKEND
	Backend string `env:"BACKEND"`

	// RedisAddress is the host:port of the Redis server.
	// Env: STORAGE_SESSIONS_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional Redis password.
	// Env: STORAGE_SESSIONS_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis logical database number.
	// Env: STORAGE_SESSIONS_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// SweepInterval is how often expired sessions are purged in the
	// background. Redis expires keys on its own and is not swept.
	// Env: STORAGE_SESSIONS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional rotated log file path.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Supported values of [DB.Driver] and [Sessions.Backend].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	SessionsBackendDB     = "db"
	SessionsBackendRedis  = "redis"
	SessionsBackendMemory = "memory"
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. .env file (only fills variables not already set in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to fields still empty after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
