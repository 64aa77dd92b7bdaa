package routes

import (
	"time"

	_ "github.com/Dosada05/playoff-bracket/docs"
	"github.com/Dosada05/playoff-bracket/handlers"
	"github.com/Dosada05/playoff-bracket/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      []byte
	AdminRole      string
	AllowedOrigins []string
	SubmitLimiter  *middleware.ClientRateLimiter
}

type Handlers struct {
	Health      *handlers.HealthHandler
	Bracket     *handlers.BracketHandler
	Leaderboard *handlers.LeaderboardHandler
	Outcome     *handlers.OutcomeHandler
	Participant *handlers.ParticipantHandler
	User        *handlers.UserHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	limiter := opts.SubmitLimiter
	if limiter == nil {
		limiter = middleware.PerMinute(0)
	}
	authenticate := middleware.Authenticate(opts.JWTSecret, opts.AdminRole)

	router.Get("/healthz", h.Health.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// websocket-соединения долгоживущие, таймаут на них не вешаем
	router.Get("/ws/leaderboard/{season}", h.WebSocket.ServeLeaderboard)

	router.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(15 * time.Second))

		r.Route("/participants/{season}", func(r chi.Router) {
			r.Get("/", h.Participant.ListParticipants)
			r.Get("/search", h.Participant.SearchParticipants)
			r.With(authenticate).Put("/", h.Participant.ReplaceParticipants)
		})

		r.Route("/brackets", func(r chi.Router) {
			r.Get("/", h.Bracket.ListBrackets)
			r.With(authenticate, middleware.RateLimit(limiter)).Post("/", h.Bracket.SubmitBracket)

			r.Route("/{bracketID}", func(r chi.Router) {
				r.Get("/", h.Bracket.GetBracket)
				r.Get("/score", h.Bracket.GetBracketScore)
				r.With(authenticate).Delete("/", h.Bracket.DeleteBracket)
			})
		})

		r.Get("/leaderboard/{season}", h.Leaderboard.GetLeaderboard)

		r.Route("/user", func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/brackets", h.User.ListMyBrackets)
			r.Put("/display-name", h.User.UpdateDisplayName)
		})

		r.Route("/outcomes/{season}", func(r chi.Router) {
			r.Get("/", h.Outcome.ListOutcomes)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.With(middleware.RateLimit(limiter)).Put("/", h.Outcome.RecordOutcomes)
				r.Delete("/", h.Outcome.ClearOutcomes)
			})
		})
	})
}
