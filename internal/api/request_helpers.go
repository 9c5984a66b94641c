package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path parameter names shared by the route table and the handlers.
const (
	ArticleIDParam = "article_id"
	CommentIDParam = "comment_id"
	UsernameParam  = "username"
)

// pathParam returns the raw value of a chi URL parameter. Parsing and
// validation belong to the service so that every caller gets the same
// messages.
func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
