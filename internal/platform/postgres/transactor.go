package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/news-api/internal/store"
)

// NewStores builds the full set of PostgreSQL stores over one handle, which
// may be the pool or a transaction.
func NewStores(db store.DBTX, logger *slog.Logger) store.Stores {
	return store.Stores{
		Topics:   NewPostgresTopicStore(db, logger),
		Users:    NewPostgresUserStore(db, logger),
		Articles: NewPostgresArticleStore(db, logger),
		Comments: NewPostgresCommentStore(db, logger),
	}
}

// Transactor implements store.Transactor on a *sql.DB.
type Transactor struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure Transactor implements store.Transactor interface
var _ store.Transactor = (*Transactor)(nil)

// NewTransactor creates a Transactor over the connection pool.
func NewTransactor(db *sql.DB, logger *slog.Logger) *Transactor {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transactor{db: db, logger: logger}
}

// WithinTx runs fn with stores bound to a single transaction.
func (t *Transactor) WithinTx(
	ctx context.Context,
	fn func(ctx context.Context, s store.Stores) error,
) error {
	return store.RunInTransaction(ctx, t.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, NewStores(tx, t.logger))
	})
}
