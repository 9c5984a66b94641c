package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		Detail:         "error details",
		SchemaName:     "public",
		TableName:      "comments",
		ColumnName:     "author",
		ConstraintName: "comments_author_fkey",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestMapError(t *testing.T) {
	t.Parallel()

	genericErr := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique violation", err: newPgError("23505"), expected: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError("23503"), expected: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError("23514"), expected: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError("23502"), expected: store.ErrInvalidEntity},
		{name: "invalid text representation", err: newPgError("22P02"), expected: store.ErrInvalidEntity},
		{name: "numeric out of range", err: newPgError("22003"), expected: store.ErrInvalidEntity},
		{
			name:     "wrapped pg error",
			err:      fmt.Errorf("query: %w", newPgError("23505")),
			expected: store.ErrDuplicate,
		},
		{name: "other error passes through", err: genericErr, expected: genericErr},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, postgres.MapError(tt.err), tt.expected)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, postgres.MapError(nil))
	})

	t.Run("unknown pg code is returned unchanged", func(t *testing.T) {
		pgErr := newPgError("40001")
		mapped := postgres.MapError(pgErr)
		assert.Same(t, error(pgErr), mapped)
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.False(t, postgres.IsForeignKeyViolation(nil))
	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.True(t, postgres.IsForeignKeyViolation(fmt.Errorf("wrapped: %w", newPgError("23503"))))
	assert.False(t, postgres.IsForeignKeyViolation(newPgError("23505")))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("rows affected", func(t *testing.T) {
		require.NoError(t, postgres.CheckRowsAffected(MockResult{rowsAffected: 1}, store.ErrCommentNotFound))
	})

	t.Run("no rows returns supplied error", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{}, store.ErrCommentNotFound)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("no rows without supplied error", func(t *testing.T) {
		assert.ErrorIs(t, postgres.CheckRowsAffected(MockResult{}, nil), store.ErrNotFound)
	})

	t.Run("rows affected error", func(t *testing.T) {
		err := postgres.CheckRowsAffected(MockResult{err: errors.New("driver")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get rows affected")
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, postgres.CheckRowsAffected(nil, nil))
	})
}
