package api

import (
	"time"

	"github.com/phrazzld/news-api/internal/domain"
)

// ArticleSummaryResponse is an article row in a listing; it has no body.
type ArticleSummaryResponse struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count"`
}

// ArticleResponse is a single article including its body.
type ArticleResponse struct {
	ArticleSummaryResponse
	Body string `json:"body"`
}

// CommentResponse is a stored comment.
type CommentResponse struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedCommentResponse echoes the accepted comment.
type CreatedCommentResponse struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func articleSummaryToResponse(a domain.Article) ArticleSummaryResponse {
	return ArticleSummaryResponse{
		ArticleID:     a.ID,
		Title:         a.Title,
		Topic:         a.Topic,
		Author:        a.Author,
		CreatedAt:     a.CreatedAt,
		Votes:         a.Votes,
		ArticleImgURL: a.ArticleImgURL,
		CommentCount:  a.CommentCount,
	}
}

func articleToResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleSummaryResponse: articleSummaryToResponse(*a),
		Body:                   a.Body,
	}
}

func commentToResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.ID,
		ArticleID: c.ArticleID,
		Author:    c.Author,
		Body:      c.Body,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}
