package service

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTopicStore mocks the store.TopicStore interface
type MockTopicStore struct {
	mock.Mock
}

func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Topic), args.Error(1)
}

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockArticleStore mocks the store.ArticleStore interface
type MockArticleStore struct {
	mock.Mock
}

func (m *MockArticleStore) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Article), args.Error(1)
}

func (m *MockArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleStore) LockForUpdate(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockCommentStore mocks the store.CommentStore interface
type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeTransactor runs the unit of work against the mocked stores and counts
// how many transactions were opened.
type fakeTransactor struct {
	stores store.Stores
	calls  int
}

func (f *fakeTransactor) WithinTx(
	ctx context.Context,
	fn func(ctx context.Context, s store.Stores) error,
) error {
	f.calls++
	return fn(ctx, f.stores)
}

type mockSet struct {
	topics   *MockTopicStore
	users    *MockUserStore
	articles *MockArticleStore
	comments *MockCommentStore
	tx       *fakeTransactor
}

func newMockSet() *mockSet {
	m := &mockSet{
		topics:   &MockTopicStore{},
		users:    &MockUserStore{},
		articles: &MockArticleStore{},
		comments: &MockCommentStore{},
	}
	m.tx = &fakeTransactor{stores: m.stores()}
	return m
}

func (m *mockSet) stores() store.Stores {
	return store.Stores{Topics: m.topics, Users: m.users, Articles: m.articles, Comments: m.comments}
}

func (m *mockSet) service() NewsService {
	return NewNewsService(m.stores(), m.tx, nil)
}

func (m *mockSet) assertExpectations(t mock.TestingT) {
	m.topics.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.articles.AssertExpectations(t)
	m.comments.AssertExpectations(t)
}
