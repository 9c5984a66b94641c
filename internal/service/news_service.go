package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// NewsService provides the read and write operations of the news API.
type NewsService interface {
	// ListTopics returns every topic. An empty table is reported as not found.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// ListUsers returns every user's public projection.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser returns a single user.
	GetUser(ctx context.Context, username string) (*domain.User, error)

	// ListArticles validates the raw sort_by, order and topic values and
	// returns the matching articles without their bodies.
	ListArticles(ctx context.Context, sortBy, order, topic string) ([]domain.Article, error)

	// GetArticle returns a single article with its body and comment count.
	GetArticle(ctx context.Context, rawID string) (*domain.Article, error)

	// ListArticleComments returns an article's comments, most recent first.
	ListArticleComments(ctx context.Context, rawID string) ([]domain.Comment, error)

	// AddComment posts a comment on an article and returns the stored comment.
	// payload is the raw request body; it is decoded only after the article
	// has been found.
	AddComment(ctx context.Context, rawID string, payload json.RawMessage) (*domain.Comment, error)

	// PatchArticleVotes applies a relative vote change and returns the
	// updated article. payload is the raw request body carrying inc_votes.
	PatchArticleVotes(ctx context.Context, rawID string, payload json.RawMessage) (*domain.Article, error)

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, rawID string) error
}

// newsServiceImpl implements the NewsService interface
type newsServiceImpl struct {
	stores store.Stores
	tx     store.Transactor
	logger *slog.Logger
}

// Ensure newsServiceImpl implements NewsService interface
var _ NewsService = (*newsServiceImpl)(nil)

// NewNewsService creates a new NewsService. Reads use stores directly;
// multi-step writes run through tx.
func NewNewsService(stores store.Stores, tx store.Transactor, logger *slog.Logger) NewsService {
	if tx == nil {
		panic("transactor cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &newsServiceImpl{
		stores: stores,
		tx:     tx,
		logger: logger.With(slog.String("component", "news_service")),
	}
}

// parseArticleID parses a raw article id. Ids too large to exist are
// reported as a missing article.
func parseArticleID(rawID string) (int64, error) {
	id, err := domain.ParseArticleID(rawID)
	if errors.Is(err, domain.ErrIDOutOfRange) {
		return 0, domain.ErrArticleNotFound
	}
	return id, err
}

func parseCommentID(rawID string) (int64, error) {
	id, err := domain.ParseCommentID(rawID)
	if errors.Is(err, domain.ErrIDOutOfRange) {
		return 0, domain.ErrCommentNotFound
	}
	return id, err
}

// ListTopics implements NewsService.ListTopics
func (s *newsServiceImpl) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.stores.Topics.List(ctx)
	if err != nil {
		return nil, NewNewsServiceError("list_topics", "failed to list topics", err)
	}
	if len(topics) == 0 {
		return nil, domain.ErrNoTopics
	}
	return topics, nil
}

// ListUsers implements NewsService.ListUsers
func (s *newsServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.stores.Users.List(ctx)
	if err != nil {
		return nil, NewNewsServiceError("list_users", "failed to list users", err)
	}
	return users, nil
}

// GetUser implements NewsService.GetUser
func (s *newsServiceImpl) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.stores.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, NewNewsServiceError("get_user", "failed to get user", err)
	}
	return user, nil
}

// ListArticles implements NewsService.ListArticles
// The query is validated before any SQL runs. A topic filter that matches no
// rows is reported as not found; an unfiltered empty listing is not.
func (s *newsServiceImpl) ListArticles(
	ctx context.Context,
	sortBy, order, topic string,
) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	q, err := domain.ParseArticleQuery(sortBy, order, topic)
	if err != nil {
		log.Debug("rejected article query",
			slog.String("sort_by", sortBy),
			slog.String("order", order))
		return nil, err
	}

	articles, err := s.stores.Articles.List(ctx, q)
	if err != nil {
		return nil, NewNewsServiceError("list_articles", "failed to list articles", err)
	}

	if q.Filtered() && len(articles) == 0 {
		return nil, domain.ErrTopicHasNoRows
	}
	return articles, nil
}

// GetArticle implements NewsService.GetArticle
func (s *newsServiceImpl) GetArticle(ctx context.Context, rawID string) (*domain.Article, error) {
	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}

	article, err := s.stores.Articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrArticleNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, NewNewsServiceError("get_article", "failed to get article", err)
	}
	return article, nil
}

// ListArticleComments implements NewsService.ListArticleComments
// The article is checked first so that a missing article is distinguished
// from one without comments.
func (s *newsServiceImpl) ListArticleComments(
	ctx context.Context,
	rawID string,
) ([]domain.Comment, error) {
	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}

	exists, err := s.stores.Articles.Exists(ctx, id)
	if err != nil {
		return nil, NewNewsServiceError("list_comments", "failed to check article", err)
	}
	if !exists {
		return nil, domain.ErrArticleNotFound
	}

	comments, err := s.stores.Comments.ListByArticle(ctx, id)
	if err != nil {
		return nil, NewNewsServiceError("list_comments", "failed to list comments", err)
	}
	return comments, nil
}

// AddComment implements NewsService.AddComment
// Checks run in a fixed order and the first failure wins: article id syntax,
// article existence, payload decoding, username presence, user existence,
// body presence.
func (s *newsServiceImpl) AddComment(
	ctx context.Context,
	rawID string,
	payload json.RawMessage,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}

	var created *domain.Comment
	err = s.tx.WithinTx(ctx, func(ctx context.Context, st store.Stores) error {
		exists, err := st.Articles.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrArticleNotFound
		}

		in, err := domain.ParseNewComment(payload)
		if err != nil {
			return err
		}
		if !in.HasUsername() {
			return domain.ErrUsernameMissing
		}
		known, err := st.Users.Exists(ctx, in.Username)
		if err != nil {
			return err
		}
		if !known {
			return domain.ErrUsernameUnknown
		}

		if !in.HasBody() {
			return domain.ErrBodyMissing
		}

		comment := &domain.Comment{ArticleID: id, Author: in.Username, Body: in.Body}
		if err := st.Comments.Create(ctx, comment); err != nil {
			return err
		}
		created = comment
		return nil
	})
	if err != nil {
		return nil, NewNewsServiceError("add_comment", "failed to add comment", err)
	}

	log.Info("comment added",
		slog.Int64("article_id", id),
		slog.Int64("comment_id", created.ID))
	return created, nil
}

// PatchArticleVotes implements NewsService.PatchArticleVotes
// The article row is locked before the increment is parsed, so a missing
// article is reported ahead of a bad payload.
func (s *newsServiceImpl) PatchArticleVotes(
	ctx context.Context,
	rawID string,
	payload json.RawMessage,
) (*domain.Article, error) {
	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}

	var updated *domain.Article
	err = s.tx.WithinTx(ctx, func(ctx context.Context, st store.Stores) error {
		exists, err := st.Articles.LockForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrArticleNotFound
		}

		delta, err := domain.ParseVotePatch(payload)
		if err != nil {
			return err
		}

		if err := st.Articles.IncrementVotes(ctx, id, delta); err != nil {
			if errors.Is(err, store.ErrArticleNotFound) {
				return domain.ErrArticleNotFound
			}
			return err
		}

		updated, err = st.Articles.GetByID(ctx, id)
		if errors.Is(err, store.ErrArticleNotFound) {
			return domain.ErrArticleNotFound
		}
		return err
	})
	if err != nil {
		return nil, NewNewsServiceError("patch_votes", "failed to update votes", err)
	}
	return updated, nil
}

// DeleteComment implements NewsService.DeleteComment
func (s *newsServiceImpl) DeleteComment(ctx context.Context, rawID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := parseCommentID(rawID)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context, st store.Stores) error {
		if err := st.Comments.Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrCommentNotFound) {
				return domain.ErrCommentNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return NewNewsServiceError("delete_comment", "failed to delete comment", err)
	}

	log.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
