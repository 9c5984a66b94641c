package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, articleID)
	if err != nil {
		log.Error("failed to query comments",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("comment", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.ArticleID,
			&c.Author,
			&c.Body,
			&c.Votes,
			&c.CreatedAt,
		); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("comment", "list", "scan failed", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comment rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("comment", "list", "row iteration failed", MapError(err))
	}

	log.Debug("comments retrieved",
		slog.Int64("article_id", articleID),
		slog.Int("count", len(comments)))
	return comments, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidEntity if the comment fails validation or if the
// article or author does not exist (foreign key violation).
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.Int64("article_id", comment.ArticleID),
			slog.String("error", err.Error()))
		return store.NewStoreError("comment", "create", "validation failed",
			fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
	}

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at
	`

	err := s.db.QueryRowContext(ctx, query, comment.ArticleID, comment.Author, comment.Body).
		Scan(&comment.ID, &comment.Votes, &comment.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int64("article_id", comment.ArticleID),
				slog.String("author", comment.Author))
		} else {
			log.Error("failed to create comment",
				slog.Int64("article_id", comment.ArticleID),
				slog.String("error", err.Error()))
		}
		return store.NewStoreError("comment", "create", "insert failed", MapError(err))
	}

	log.Info("comment created",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("article_id", comment.ArticleID))
	return nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if no row matched.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.Int64("comment_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("comment", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			log.Debug("comment not found for deletion", slog.Int64("comment_id", id))
		}
		return err
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
