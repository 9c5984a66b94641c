package api

import (
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	newsService service.NewsService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(newsService service.NewsService) *UserHandler {
	return &UserHandler{newsService: newsService}
}

// ListUsers handles GET /api/users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.newsService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{"users": users})
}

// GetUser handles GET /api/users/{username} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.newsService.GetUser(r.Context(), pathParam(r, UsernameParam))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{"user": user})
}
