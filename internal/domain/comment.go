package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidComment is returned by Comment.Validate.
var ErrInvalidComment = errors.New("invalid comment")

var validate = validator.New()

// Comment is a reply attached to exactly one article.
type Comment struct {
	ID        int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id" validate:"required,gt=0"`
	Author    string    `json:"author"     validate:"required"`
	Body      string    `json:"body"       validate:"required"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields a comment needs before it can be stored.
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidComment, err)
	}
	return nil
}

// NewComment is the payload accepted when posting a comment.
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// HasUsername reports whether a username was supplied.
func (c NewComment) HasUsername() bool {
	return c.Username != ""
}

// HasBody reports whether a comment body was supplied.
func (c NewComment) HasBody() bool {
	return c.Body != ""
}

// ParseNewComment decodes a comment payload. An empty payload is treated as
// {}; malformed JSON or fields of the wrong type fail with ErrInvalidPayload.
// Presence of the fields is left to HasUsername and HasBody so that callers
// can order their checks.
func ParseNewComment(payload json.RawMessage) (NewComment, error) {
	var c NewComment
	if err := decodePayload(payload, &c); err != nil {
		return NewComment{}, err
	}
	return c, nil
}
