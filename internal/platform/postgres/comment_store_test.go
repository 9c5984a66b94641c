package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCommentStore_ListByArticle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	newer := time.Date(2020, 11, 3, 21, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(`ORDER BY created_at DESC, comment_id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "article_id", "author", "body", "votes", "created_at"}).
			AddRow(5, 1, "icellusedkars", "I hate streaming noses", 0, newer).
			AddRow(2, 1, "butter_bridge", "The beautiful thing about treasure is that it exists.", 14, older))

	comments, err := NewPostgresCommentStore(db, nil).ListByArticle(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(5), comments[0].ID)
	assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCommentStore_Create(t *testing.T) {
	t.Run("fills generated columns", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		now := time.Now().UTC()
		mock.ExpectQuery(`INSERT INTO comments \(article_id, author, body\)`).
			WithArgs(int64(1), "lurker", "first!").
			WillReturnRows(sqlmock.NewRows([]string{"comment_id", "votes", "created_at"}).AddRow(19, 0, now))

		c := &domain.Comment{ArticleID: 1, Author: "lurker", Body: "first!"}
		require.NoError(t, NewPostgresCommentStore(db, nil).Create(context.Background(), c))
		assert.Equal(t, int64(19), c.ID)
		assert.Equal(t, 0, c.Votes)
		assert.Equal(t, now, c.CreatedAt)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`INSERT INTO comments`).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_author_fkey"})

		c := &domain.Comment{ArticleID: 1, Author: "nobody", Body: "hello"}
		err = NewPostgresCommentStore(db, nil).Create(context.Background(), c)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("invalid comment is rejected before insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		for _, c := range []*domain.Comment{
			{ArticleID: 0, Author: "lurker", Body: "hello"},
			{ArticleID: 1, Author: "", Body: "hello"},
			{ArticleID: 1, Author: "lurker", Body: ""},
		} {
			err = NewPostgresCommentStore(db, nil).Create(context.Background(), c)
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCommentStore_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: store.ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
				WithArgs(int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = NewPostgresCommentStore(db, nil).Delete(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
