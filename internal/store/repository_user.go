package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both supported dialects.
//
// Every method resolves its connection with [DB.conn], so calls made inside
// [DB.WithinTransaction] share the caller's transaction.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *userRepository) exists(ctx context.Context, column, value string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.builder, column, value)
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		log.Err(err).Str("func", "*userRepository.exists").Str("column", column).Msg("existence check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CreateUser persists a new user record. CreatedAt is stamped here (UTC)
// unless the caller already set it, and UserID comes from RETURNING.
//
// Error handling:
//   - unique violation → [ErrUserAlreadyExists], joined with
//     [ErrUsernameTaken] or [ErrEmailTaken] when the constraint is known.
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, err
	}

	row := r.db.conn(ctx).QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Scan(&user.UserID); err != nil {
		if constraint, ok := r.db.errorClassificator.UniqueViolation(err); ok {
			log.Warn().Err(err).Str("func", "*userRepository.CreateUser").Str("constraint", constraint).Msg("unique violation on insert")
			return models.User{}, uniqueViolationError(constraint)
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// uniqueViolationError narrows ErrUserAlreadyExists by constraint name. Both
// the postgres constraint names and the sqlite "users.column" form contain the
// column name.
func uniqueViolationError(constraint string) error {
	switch {
	case strings.Contains(constraint, "username"):
		return fmt.Errorf("%w: %w", ErrUserAlreadyExists, ErrUsernameTaken)
	case strings.Contains(constraint, "email"):
		return fmt.Errorf("%w: %w", ErrUserAlreadyExists, ErrEmailTaken)
	default:
		return ErrUserAlreadyExists
	}
}

// FindUserByUsername retrieves the user whose username matches exactly.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, err
	}

	var foundUser models.User
	row := r.db.conn(ctx).QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// scan found user from db
	err = row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt)
	switch {
	case err == nil:
		return foundUser, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}

// ListUsers returns all users ordered by creation time, newest first. An
// empty table yields an empty, non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
