package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/forum-api/forum/backend/internal/setup"
	mw "github.com/forum-api/forum/shared/middleware"
	"github.com/forum-api/forum/shared/middleware/metrics"
	rl "github.com/forum-api/forum/shared/middleware/ratelimiter"
)

// New creates and configures a new chi router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit request for all endpoints combined in that group
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(mw.Recover)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	// Registration and login
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(rl.New(1.0/10, 3, time.Hour), mw.GetIP)) // burst of 3, then one per 10s by IP
		r.Use(mw.GlobalRateLimit(rl.Rps100()))                       // 100 global RPS
		r.Post("/users", h.Register)
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(rl.OnceInSecond(), mw.GetIP)) // 1 per second by IP
		r.Use(mw.GlobalRateLimit(rl.Rps100()))
		r.Post("/authentications", h.Login)
	})

	// Public reads
	r.With(mw.RateLimit(rl.Rps10(), mw.GetIP)).Get("/threads/{threadId}", h.GetThread)

	// Logged-in user routes
	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())
		r.Use(mw.RateLimit(rl.Rps100(), mw.GetUserIDFromContext)) // 100 RPS per user

		// CreateThread: 1 per 10 seconds per user
		r.With(mw.RateLimit(rl.New(1.0/10, 1, time.Hour), mw.GetUserIDFromContext)).Post("/threads", h.CreateThread)

		perSecond := mw.RateLimit(rl.OnceInSecond(), mw.GetUserIDFromContext)
		r.With(perSecond).Post("/threads/{threadId}/comments", h.CreateComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
		r.With(perSecond).Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})

	return r
}
