package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   domain.ArticleQuery
		want    string
		wantErr bool
	}{
		{
			name:  "default",
			query: domain.DefaultArticleQuery(),
			want:  "ORDER BY a.created_at DESC, a.article_id DESC",
		},
		{
			name:  "comment count ascending",
			query: domain.ArticleQuery{SortBy: domain.SortByCommentCount, Order: domain.Ascending},
			want:  "ORDER BY comment_count ASC, a.article_id DESC",
		},
		{
			name:  "article id has no tie-break",
			query: domain.ArticleQuery{SortBy: domain.SortByArticleID, Order: domain.Ascending},
			want:  "ORDER BY a.article_id ASC",
		},
		{
			name:    "column outside the allow-list",
			query:   domain.ArticleQuery{SortBy: "body; DROP TABLE articles", Order: domain.Ascending},
			wantErr: true,
		},
		{
			name:    "unknown direction",
			query:   domain.ArticleQuery{SortBy: domain.SortByVotes, Order: "sideways"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := orderByClause(tt.query)
			if tt.wantErr {
				assert.ErrorIs(t, err, store.ErrInvalidEntity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

var articleListColumns = []string{
	"article_id", "title", "topic", "author", "created_at", "votes", "article_img_url", "comment_count",
}

func TestPostgresArticleStore_List(t *testing.T) {
	created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

	t.Run("unfiltered listing binds no arguments", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`LEFT JOIN comments c ON c\.article_id = a\.article_id\s+GROUP BY a\.article_id\s+ORDER BY a\.votes ASC, a\.article_id DESC`).
			WillReturnRows(sqlmock.NewRows(articleListColumns).
				AddRow(2, "Sony Vaio", "mitch", "icellusedkars", created, 0, "https://img/2", 0).
				AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge", created, 100, "https://img/1", 11))

		s := NewPostgresArticleStore(db, nil)
		articles, err := s.List(context.Background(),
			domain.ArticleQuery{SortBy: domain.SortByVotes, Order: domain.Ascending})
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, int64(1), articles[1].ID)
		assert.Equal(t, 11, articles[1].CommentCount)
		assert.Empty(t, articles[1].Body)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("topic filter is bound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`WHERE a\.topic = \$1`).
			WithArgs("cats").
			WillReturnRows(sqlmock.NewRows(articleListColumns).
				AddRow(5, "UNCOVERED: catspiracy to bring down democracy", "cats", "rogersop", created, 0, "", 2))

		s := NewPostgresArticleStore(db, nil)
		q := domain.DefaultArticleQuery()
		q.Topic = "cats"
		articles, err := s.List(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "cats", articles[0].Topic)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is an empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`FROM articles a`).WillReturnRows(sqlmock.NewRows(articleListColumns))

		articles, err := NewPostgresArticleStore(db, nil).List(context.Background(), domain.DefaultArticleQuery())
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})

	t.Run("rejected query never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		_, err = NewPostgresArticleStore(db, nil).List(context.Background(),
			domain.ArticleQuery{SortBy: "password", Order: domain.Descending})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`FROM articles a`).WillReturnError(errors.New("connection reset"))

		_, err = NewPostgresArticleStore(db, nil).List(context.Background(), domain.DefaultArticleQuery())
		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "article", storeErr.Entity)
		assert.Equal(t, "list", storeErr.Operation)
	})
}

func TestPostgresArticleStore_GetByID(t *testing.T) {
	columns := []string{
		"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url", "comment_count",
	}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`WHERE a\.article_id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "Living in the shadow of a great man", "mitch", "butter_bridge",
					"I find this existence challenging", time.Now(), 100, "https://img/1", 11))

		article, err := NewPostgresArticleStore(db, nil).GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "I find this existence challenging", article.Body)
		assert.Equal(t, 100, article.Votes)
		assert.Equal(t, 11, article.CommentCount)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(`WHERE a\.article_id = \$1`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err = NewPostgresArticleStore(db, nil).GetByID(context.Background(), 999)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}

func TestPostgresArticleStore_ExistsAndLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewPostgresArticleStore(db, nil)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := s.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`FOR UPDATE`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"article_id"}).AddRow(1))
	locked, err := s.LockForUpdate(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, locked)

	mock.ExpectQuery(`FOR UPDATE`).WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"article_id"}))
	locked, err = s.LockForUpdate(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresArticleStore_IncrementVotes(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec(`SET votes = votes \+ \$2`).
			WithArgs(int64(1), -100).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewPostgresArticleStore(db, nil).IncrementVotes(context.Background(), 1, -100))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec(`SET votes = votes \+ \$2`).
			WithArgs(int64(999), 1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = NewPostgresArticleStore(db, nil).IncrementVotes(context.Background(), 999, 1)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}
