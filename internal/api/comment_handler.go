package api

import (
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/service"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	newsService service.NewsService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(newsService service.NewsService) *CommentHandler {
	return &CommentHandler{newsService: newsService}
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.newsService.DeleteComment(r.Context(), pathParam(r, CommentIDParam)); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w, r)
}
