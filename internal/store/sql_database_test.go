package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransaction_Commit(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &userRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM users WHERE username`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectCommit()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		_, err := repo.ExistsByUsername(ctx, "alice")
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollbackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	sentinel := errors.New("stop")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := &userRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM users`).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT 1 FROM users`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectCommit()

	calls := 0
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		calls++
		_, err := repo.ExistsByUsername(ctx, "alice")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_DoesNotRetryUniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		calls++
		return pgUniqueError("users_email_key")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithinTransaction_Nested(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := db.WithinTransaction(context.Background(), func(ctx context.Context) error {
		return db.WithinTransaction(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_BeginError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	err := db.WithinTransaction(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestWithinTransaction_CommitError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := db.WithinTransaction(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestWithinTransaction_PanicRollsBack(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = db.WithinTransaction(context.Background(), func(context.Context) error { panic("boom") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
