package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/news-api/internal/api"
	apiMiddleware "github.com/phrazzld/news-api/internal/api/middleware"
	"github.com/phrazzld/news-api/internal/service"
	"github.com/rs/cors"
)

// requestTimeout bounds the context of every request handled by the router.
const requestTimeout = 30 * time.Second

// routerDeps carries what the router needs to build its handlers.
type routerDeps struct {
	newsService    service.NewsService
	logger         *slog.Logger
	allowedOrigins []string
}

// newRouter creates the application router with all routes and middleware.
func newRouter(deps routerDeps) *chi.Mux {
	logger := deps.logger
	if logger == nil {
		logger = slog.Default()
	}

	origins := deps.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type"},
	})

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(corsMiddleware.Handler)

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	topicHandler := api.NewTopicHandler(deps.newsService)
	articleHandler := api.NewArticleHandler(deps.newsService)
	commentHandler := api.NewCommentHandler(deps.newsService)
	userHandler := api.NewUserHandler(deps.newsService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", api.GetEndpoints)

		r.Get("/topics", topicHandler.ListTopics)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.ListArticles)
			r.Route("/{"+api.ArticleIDParam+"}", func(r chi.Router) {
				r.Get("/", articleHandler.GetArticle)
				r.Patch("/", articleHandler.PatchArticleVotes)
				r.Get("/comments", articleHandler.ListComments)
				r.Post("/comments", articleHandler.AddComment)
			})
		})

		r.Delete("/comments/{"+api.CommentIDParam+"}", commentHandler.DeleteComment)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{"+api.UsernameParam+"}", userHandler.GetUser)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
