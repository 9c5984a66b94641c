package api

import (
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/service"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	newsService service.NewsService
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(newsService service.NewsService) *TopicHandler {
	return &TopicHandler{newsService: newsService}
}

// ListTopics handles GET /api/topics requests
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.newsService.ListTopics(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{"topics": topics})
}
