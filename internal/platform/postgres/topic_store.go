package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the TopicStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT slug, description
		FROM topics
		ORDER BY slug
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query topics", slog.String("error", err.Error()))
		return nil, store.NewStoreError("topic", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	topics := make([]domain.Topic, 0)
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("topic", "list", "scan failed", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating topic rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("topic", "list", "row iteration failed", MapError(err))
	}

	log.Debug("topics retrieved", slog.Int("count", len(topics)))
	return topics, nil
}
