package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

const sessionKeyPrefix = "session:"

// redisSessionStore keeps sessions as JSON values whose Redis TTL matches the
// session expiry, so expired sessions disappear without sweeping.
type redisSessionStore struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// redisSession is the stored form of a session. The token is the key and is
// not repeated in the value.
type redisSession struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewConnectRedis creates a client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Sessions, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: %w", ErrSessionStoreFailure, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewRedisSessionStore constructs a Redis-backed [SessionStore].
func NewRedisSessionStore(rdb *redis.Client, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		rdb:    rdb,
		logger: logger,
	}
}

func (s *redisSessionStore) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(redisSession{
		UserID:    session.UserID,
		Username:  session.Username,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStoreFailure, err)
	}

	// zero TTL means the key never expires
	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = time.Until(session.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
	}

	if err = s.rdb.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStore.CreateSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionStoreFailure, err)
	}
	return nil
}

func (s *redisSessionStore) FindSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	data, err := s.rdb.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*redisSessionStore.FindSession").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStoreFailure, err)
	}

	var stored redisSession
	if err = json.Unmarshal(data, &stored); err != nil {
		log.Err(err).Str("func", "*redisSessionStore.FindSession").Msg("corrupt session value")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStoreFailure, err)
	}

	return models.Session{
		Token:     token,
		UserID:    stored.UserID,
		Username:  stored.Username,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

func (s *redisSessionStore) DeleteSession(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrSessionStoreFailure, err)
	}
	return nil
}

// DeleteExpiredSessions is a no-op: Redis evicts keys when their TTL runs out.
func (s *redisSessionStore) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
