package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

var (
	userColumns    = []string{"user_id", "username", "email", "password", "created_at"}
	sessionColumns = []string{"token", "user_id", "username", "created_at", "expires_at"}
)

// buildExistsQuery selects 1 from users where column equals value. The
// comparison is exact, which keeps lookups case-sensitive.
func buildExistsQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	query, args, err := b.
		Select("1").
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("username", "email", "password", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListUsersQuery orders newest first; user_id breaks ties between rows
// created within the same clock tick.
func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		OrderBy("created_at DESC", "user_id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateSessionQuery(b sq.StatementBuilderType, s models.Session) (string, []any, error) {
	query, args, err := b.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(s.Token, s.UserID, s.Username, s.CreatedAt, s.ExpiresAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindSessionQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	query, args, err := b.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, token string) (string, []any, error) {
	query, args, err := b.
		Delete(sessionsTable).
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
