package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// sortExpressions maps each sortable column onto the SQL expression used in
// ORDER BY. Only these fragments ever reach the query text.
var sortExpressions = map[domain.SortColumn]string{
	domain.SortByArticleID:     "a.article_id",
	domain.SortByTitle:         "a.title",
	domain.SortByTopic:         "a.topic",
	domain.SortByAuthor:        "a.author",
	domain.SortByCreatedAt:     "a.created_at",
	domain.SortByVotes:         "a.votes",
	domain.SortByArticleImgURL: "a.article_img_url",
	domain.SortByCommentCount:  "comment_count",
}

var sortDirections = map[domain.SortOrder]string{
	domain.Ascending:  "ASC",
	domain.Descending: "DESC",
}

// orderByClause renders the ORDER BY clause for q. Ties are broken by
// article_id descending so pages are stable.
func orderByClause(q domain.ArticleQuery) (string, error) {
	expr, ok := sortExpressions[q.SortBy]
	if !ok {
		return "", fmt.Errorf("%w: unsupported sort column %q", store.ErrInvalidEntity, q.SortBy)
	}
	dir, ok := sortDirections[q.Order]
	if !ok {
		return "", fmt.Errorf("%w: unsupported sort order %q", store.ErrInvalidEntity, q.Order)
	}

	if q.SortBy == domain.SortByArticleID {
		return fmt.Sprintf("ORDER BY %s %s", expr, dir), nil
	}
	return fmt.Sprintf("ORDER BY %s %s, a.article_id DESC", expr, dir), nil
}

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// List implements store.ArticleStore.List
// The topic filter is always a bound parameter; the ORDER BY clause comes
// from a fixed table keyed by the validated query.
func (s *PostgresArticleStore) List(
	ctx context.Context,
	q domain.ArticleQuery,
) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := orderByClause(q)
	if err != nil {
		log.Warn("rejected article query", slog.String("error", err.Error()))
		return nil, err
	}

	var (
		where string
		args  []any
	)
	if q.Filtered() {
		where = "WHERE a.topic = $1"
		args = append(args, q.Topic)
	}

	query := fmt.Sprintf(`
		SELECT a.article_id, a.title, a.topic, a.author, a.created_at, a.votes,
			a.article_img_url, COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		%s
		GROUP BY a.article_id
		%s
	`, where, orderBy)

	log.Debug("listing articles",
		slog.String("sort_by", string(q.SortBy)),
		slog.String("order", string(q.Order)),
		slog.String("topic", q.Topic))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query articles", slog.String("error", err.Error()))
		return nil, store.NewStoreError("article", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.Votes,
			&a.ArticleImgURL,
			&a.CommentCount,
		); err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("article", "list", "scan failed", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating article rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("article", "list", "row iteration failed", MapError(err))
	}

	log.Debug("articles retrieved", slog.Int("count", len(articles)))
	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving article by ID", slog.Int64("article_id", id))

	query := `
		SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes,
			a.article_img_url, COUNT(c.comment_id)::int AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Topic,
		&a.Author,
		&a.Body,
		&a.CreatedAt,
		&a.Votes,
		&a.ArticleImgURL,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article by ID",
			slog.Int64("article_id", id),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("article", "get", "query failed", MapError(err))
	}

	return &a, nil
}

// Exists implements store.ArticleStore.Exists
func (s *PostgresArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		log.Error("failed to check article existence",
			slog.Int64("article_id", id),
			slog.String("error", err.Error()))
		return false, store.NewStoreError("article", "exists", "query failed", MapError(err))
	}

	return exists, nil
}

// LockForUpdate implements store.ArticleStore.LockForUpdate
// The lock is only meaningful when the store is bound to a transaction.
func (s *PostgresArticleStore) LockForUpdate(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT article_id FROM articles WHERE article_id = $1 FOR UPDATE`

	var locked int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Error("failed to lock article",
			slog.Int64("article_id", id),
			slog.String("error", err.Error()))
		return false, store.NewStoreError("article", "lock", "query failed", MapError(err))
	}

	return true, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// Returns store.ErrArticleNotFound if no row was updated.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $2
		WHERE article_id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id, delta)
	if err != nil {
		log.Error("failed to increment article votes",
			slog.Int64("article_id", id),
			slog.Int("delta", delta),
			slog.String("error", err.Error()))
		return store.NewStoreError("article", "update votes", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrArticleNotFound); err != nil {
		if errors.Is(err, store.ErrArticleNotFound) {
			log.Debug("article not found for vote update", slog.Int64("article_id", id))
		}
		return err
	}

	log.Info("article votes updated",
		slog.Int64("article_id", id),
		slog.Int("delta", delta))
	return nil
}
