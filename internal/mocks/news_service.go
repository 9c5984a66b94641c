package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/service"
)

// MockNewsService implements service.NewsService for testing. Each method
// delegates to its Fn field when set and otherwise returns zero values with
// Err.
type MockNewsService struct {
	ListTopicsFn          func(ctx context.Context) ([]domain.Topic, error)
	ListUsersFn           func(ctx context.Context) ([]domain.User, error)
	GetUserFn             func(ctx context.Context, username string) (*domain.User, error)
	ListArticlesFn        func(ctx context.Context, sortBy, order, topic string) ([]domain.Article, error)
	GetArticleFn          func(ctx context.Context, rawID string) (*domain.Article, error)
	ListArticleCommentsFn func(ctx context.Context, rawID string) ([]domain.Comment, error)
	AddCommentFn          func(ctx context.Context, rawID string, payload json.RawMessage) (*domain.Comment, error)
	PatchArticleVotesFn   func(ctx context.Context, rawID string, payload json.RawMessage) (*domain.Article, error)
	DeleteCommentFn       func(ctx context.Context, rawID string) error

	// Err is returned by methods without an Fn override.
	Err error

	mu    sync.Mutex
	calls map[string]int
}

// Ensure MockNewsService implements service.NewsService
var _ service.NewsService = (*MockNewsService)(nil)

func (m *MockNewsService) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockNewsService) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// ListTopics implements service.NewsService
func (m *MockNewsService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	m.record("ListTopics")
	if m.ListTopicsFn != nil {
		return m.ListTopicsFn(ctx)
	}
	return nil, m.Err
}

// ListUsers implements service.NewsService
func (m *MockNewsService) ListUsers(ctx context.Context) ([]domain.User, error) {
	m.record("ListUsers")
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, m.Err
}

// GetUser implements service.NewsService
func (m *MockNewsService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	m.record("GetUser")
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, username)
	}
	return nil, m.Err
}

// ListArticles implements service.NewsService
func (m *MockNewsService) ListArticles(
	ctx context.Context,
	sortBy, order, topic string,
) ([]domain.Article, error) {
	m.record("ListArticles")
	if m.ListArticlesFn != nil {
		return m.ListArticlesFn(ctx, sortBy, order, topic)
	}
	return nil, m.Err
}

// GetArticle implements service.NewsService
func (m *MockNewsService) GetArticle(ctx context.Context, rawID string) (*domain.Article, error) {
	m.record("GetArticle")
	if m.GetArticleFn != nil {
		return m.GetArticleFn(ctx, rawID)
	}
	return nil, m.Err
}

// ListArticleComments implements service.NewsService
func (m *MockNewsService) ListArticleComments(
	ctx context.Context,
	rawID string,
) ([]domain.Comment, error) {
	m.record("ListArticleComments")
	if m.ListArticleCommentsFn != nil {
		return m.ListArticleCommentsFn(ctx, rawID)
	}
	return nil, m.Err
}

// AddComment implements service.NewsService
func (m *MockNewsService) AddComment(
	ctx context.Context,
	rawID string,
	payload json.RawMessage,
) (*domain.Comment, error) {
	m.record("AddComment")
	if m.AddCommentFn != nil {
		return m.AddCommentFn(ctx, rawID, payload)
	}
	return nil, m.Err
}

// PatchArticleVotes implements service.NewsService
func (m *MockNewsService) PatchArticleVotes(
	ctx context.Context,
	rawID string,
	payload json.RawMessage,
) (*domain.Article, error) {
	m.record("PatchArticleVotes")
	if m.PatchArticleVotesFn != nil {
		return m.PatchArticleVotesFn(ctx, rawID, payload)
	}
	return nil, m.Err
}

// DeleteComment implements service.NewsService
func (m *MockNewsService) DeleteComment(ctx context.Context, rawID string) error {
	m.record("DeleteComment")
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, rawID)
	}
	return m.Err
}
