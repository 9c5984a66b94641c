package api

import (
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/service"
)

// ArticleHandler handles article and article-comment HTTP requests
type ArticleHandler struct {
	newsService service.NewsService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(newsService service.NewsService) *ArticleHandler {
	return &ArticleHandler{newsService: newsService}
}

// ListArticles handles GET /api/articles requests.
// Query parameters: sort_by, order, topic.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	articles, err := h.newsService.ListArticles(r.Context(),
		q.Get("sort_by"), q.Get("order"), q.Get("topic"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := make([]ArticleSummaryResponse, 0, len(articles))
	for _, a := range articles {
		response = append(response, articleSummaryToResponse(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{"articles": response})
}

// GetArticle handles GET /api/articles/{article_id} requests
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.newsService.GetArticle(r.Context(), pathParam(r, ArticleIDParam))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		map[string]interface{}{"article": articleToResponse(article)})
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests.
// The body is passed through undecoded; the service reports a malformed
// payload only once the article id has been checked and found.
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	payload, err := shared.ReadBody(r)
	if err != nil {
		HandleAPIError(w, r, domain.ErrInvalidPayload)
		return
	}

	article, err := h.newsService.PatchArticleVotes(r.Context(), pathParam(r, ArticleIDParam), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		map[string]interface{}{"article": articleToResponse(article)})
}

// ListComments handles GET /api/articles/{article_id}/comments requests
func (h *ArticleHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.newsService.ListArticleComments(r.Context(), pathParam(r, ArticleIDParam))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		response = append(response, commentToResponse(c))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{"comments": response})
}

// AddComment handles POST /api/articles/{article_id}/comments requests
func (h *ArticleHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	payload, err := shared.ReadBody(r)
	if err != nil {
		HandleAPIError(w, r, domain.ErrInvalidPayload)
		return
	}

	comment, err := h.newsService.AddComment(r.Context(), pathParam(r, ArticleIDParam), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"comment": CreatedCommentResponse{Username: comment.Author, Body: comment.Body},
	})
}
