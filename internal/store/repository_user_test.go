package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newPostgresDB(db, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgUniqueError(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

// ── ExistsByUsername / ExistsByEmail ──

func TestExistsByUsername(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE username = \$1 LIMIT 1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := repo.ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE email = \$1`).
		WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	ok, err := repo.ExistsByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExistsByUsername_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT 1 FROM users`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ExistsByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── CreateUser ──

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "alice", Email: "a@b.c", PasswordHash: "hash"}

	mock.ExpectQuery(`INSERT INTO users \(username,email,password,created_at\)`).
		WithArgs("alice", "a@b.c", "hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "alice", created.Username)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_KeepsCallerTimestamp(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "a@b.c", "hash", at).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(9)))

	created, err := repo.CreateUser(context.Background(), models.User{Username: "alice", Email: "a@b.c", PasswordHash: "hash", CreatedAt: at})
	require.NoError(t, err)
	assert.Equal(t, at, created.CreatedAt)
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantNarrow error
	}{
		{name: "username", constraint: "users_username_key", wantNarrow: ErrUsernameTaken},
		{name: "email", constraint: "users_email_key", wantNarrow: ErrEmailTaken},
		{name: "unknown constraint", constraint: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery(`INSERT INTO users`).
				WillReturnError(pgUniqueError(tt.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
			require.ErrorIs(t, err, ErrUserAlreadyExists)
			if tt.wantNarrow != nil {
				assert.ErrorIs(t, err, tt.wantNarrow)
			} else {
				assert.NotErrorIs(t, err, ErrUsernameTaken)
				assert.NotErrorIs(t, err, ErrEmailTaken)
			}
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ── FindUserByUsername ──

func TestFindUserByUsername_Found(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT user_id, username, email, password, created_at FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(3), "alice", "a@b.c", "hash", now))

	u, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, models.User{UserID: 3, Username: "alice", Email: "a@b.c", PasswordHash: "hash", CreatedAt: now}, u)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE username`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE username`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users WHERE username`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(3), "alice", "a@b.c", "hash", "not-a-time"))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrExecutingQuery)
}

// ── ListUsers ──

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(`ORDER BY created_at DESC, user_id DESC`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(2), "bob", "b@b.c", "h2", newer).
			AddRow(int64(1), "alice", "a@b.c", "h1", older))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users`).WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users`).WillReturnError(errors.New("boom"))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListUsers_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "alice", "a@b.c", "h", time.Now()).
			RowError(0, errors.New("row broke")))

	_, err := repo.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
