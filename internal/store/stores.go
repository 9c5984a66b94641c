package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// TopicStore reads topics.
type TopicStore interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)
}

// UserStore reads the public projection of users.
type UserStore interface {
	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Exists reports whether a user with the given username exists.
	Exists(ctx context.Context, username string) (bool, error)
}

// ArticleStore reads articles and applies vote increments.
type ArticleStore interface {
	// List returns articles with their comment counts, ordered and filtered
	// according to q. Rows do not carry the article body.
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)

	// GetByID returns a single article with its body and comment count.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// Exists reports whether an article with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// LockForUpdate reports whether the article exists and, when it does,
	// holds a row lock on it until the surrounding transaction ends.
	LockForUpdate(ctx context.Context, id int64) (bool, error)

	// IncrementVotes adds delta to the article's votes in a single statement.
	// Returns ErrArticleNotFound if no row was updated.
	IncrementVotes(ctx context.Context, id int64, delta int) error
}

// CommentStore reads, creates and deletes comments.
type CommentStore interface {
	// ListByArticle returns an article's comments, most recent first.
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// Create inserts the comment and fills in the generated id, votes and
	// creation time.
	Create(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment. Returns ErrCommentNotFound if no row matched.
	Delete(ctx context.Context, id int64) error
}

// Stores bundles the stores that share one database handle, either the
// connection pool or a single transaction.
type Stores struct {
	Topics   TopicStore
	Users    UserStore
	Articles ArticleStore
	Comments CommentStore
}

// Transactor runs a unit of work against stores bound to one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}
