package seed

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

//go:embed data/*.json
var dataFS embed.FS

// Dataset names one of the embedded fixture sets.
type Dataset string

// Available fixture sets.
const (
	Development Dataset = "development"
	Test        Dataset = "test"
)

// ErrUnknownDataset is returned when no fixture set has the requested name.
var ErrUnknownDataset = errors.New("unknown seed dataset")

// ArticleFixture is an article row. Articles receive ids in file order,
// starting at 1.
type ArticleFixture struct {
	Title         string    `json:"title"           validate:"required"`
	Topic         string    `json:"topic"           validate:"required"`
	Author        string    `json:"author"          validate:"required"`
	Body          string    `json:"body"            validate:"required"`
	CreatedAt     time.Time `json:"created_at"      validate:"required"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url" validate:"required,url"`
}

// CommentFixture is a comment row referring to an article by its position.
type CommentFixture struct {
	ArticleID int64     `json:"article_id" validate:"required,gt=0"`
	Author    string    `json:"author"     validate:"required"`
	Body      string    `json:"body"       validate:"required"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Fixtures is a complete data set for all four tables.
type Fixtures struct {
	Topics   []domain.Topic   `json:"topics"   validate:"required,dive"`
	Users    []domain.User    `json:"users"    validate:"dive"`
	Articles []ArticleFixture `json:"articles" validate:"dive"`
	Comments []CommentFixture `json:"comments" validate:"dive"`
}

// Load reads and validates an embedded fixture set.
func Load(name Dataset) (*Fixtures, error) {
	raw, err := dataFS.ReadFile(fmt.Sprintf("data/%s.json", name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
		}
		return nil, fmt.Errorf("failed to read seed dataset %q: %w", name, err)
	}
	return Parse(raw)
}

// Parse decodes a fixture document and validates it.
func Parse(raw []byte) (*Fixtures, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks field constraints and that every reference resolves
// within the set.
func (f *Fixtures) Validate() error {
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf("seed data validation failed: %w", err)
	}

	topics := make(map[string]bool, len(f.Topics))
	for _, t := range f.Topics {
		if topics[t.Slug] {
			return fmt.Errorf("seed data validation failed: duplicate topic %q", t.Slug)
		}
		topics[t.Slug] = true
	}
	users := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if users[u.Username] {
			return fmt.Errorf("seed data validation failed: duplicate user %q", u.Username)
		}
		users[u.Username] = true
	}

	for i, a := range f.Articles {
		if !topics[a.Topic] {
			return fmt.Errorf("seed data validation failed: article %d has unknown topic %q", i+1, a.Topic)
		}
		if !users[a.Author] {
			return fmt.Errorf("seed data validation failed: article %d has unknown author %q", i+1, a.Author)
		}
	}
	for i, c := range f.Comments {
		if c.ArticleID > int64(len(f.Articles)) {
			return fmt.Errorf("seed data validation failed: comment %d refers to missing article %d",
				i+1, c.ArticleID)
		}
		if !users[c.Author] {
			return fmt.Errorf("seed data validation failed: comment %d has unknown author %q", i+1, c.Author)
		}
	}
	return nil
}

// Apply truncates all tables, resetting their id sequences, and inserts f in
// a single transaction.
func Apply(ctx context.Context, db *sql.DB, f *Fixtures, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(
		slog.String("component", "seed"),
		slog.String("correlation_id", uuid.New().String()),
	)
	ctx = logger.WithContext(ctx, log)

	start := time.Now()
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}

		for _, t := range f.Topics {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
				t.Slug, t.Description); err != nil {
				return fmt.Errorf("failed to insert topic %q: %w", t.Slug, err)
			}
		}
		for _, u := range f.Users {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
				u.Username, u.Name, u.AvatarURL); err != nil {
				return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
			}
		}
		for _, a := range f.Articles {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, a.ArticleImgURL); err != nil {
				return fmt.Errorf("failed to insert article %q: %w", a.Title, err)
			}
		}
		for i, c := range f.Comments {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO comments (article_id, author, body, votes, created_at)
				VALUES ($1, $2, $3, $4, $5)`,
				c.ArticleID, c.Author, c.Body, c.Votes, c.CreatedAt); err != nil {
				return fmt.Errorf("failed to insert comment %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("seeding failed", slog.String("error", err.Error()))
		return err
	}

	log.Info("database seeded",
		slog.Int("topics", len(f.Topics)),
		slog.Int("users", len(f.Users)),
		slog.Int("articles", len(f.Articles)),
		slog.Int("comments", len(f.Comments)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Run loads the named fixture set and applies it.
func Run(ctx context.Context, db *sql.DB, name Dataset, log *slog.Logger) error {
	f, err := Load(name)
	if err != nil {
		return err
	}
	return Apply(ctx, db, f, log)
}
