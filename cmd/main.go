package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/playoff-bracket/brackets"
	"github.com/Dosada05/playoff-bracket/config"
	"github.com/Dosada05/playoff-bracket/db"
	"github.com/Dosada05/playoff-bracket/handlers"
	"github.com/Dosada05/playoff-bracket/middleware"
	"github.com/Dosada05/playoff-bracket/repositories"
	api "github.com/Dosada05/playoff-bracket/routes"
	"github.com/Dosada05/playoff-bracket/services"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

// @title        Playoff Bracket API
// @version      1.0
// @description  NFL playoff bracket predictions, game outcomes and the season leaderboard.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.Int("default_season", cfg.DefaultSeason),
	)

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if cfg.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := db.ApplySchema(migrateCtx, dbConn)
		cancel()
		if err != nil {
			logger.Error("failed to apply schema", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("database schema applied")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubCtx)
	logger.Info("WebSocket Hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	bracketRepo := repositories.NewPostgresBracketRepository(dbConn)
	predictionRepo := repositories.NewPostgresPredictionRepository(dbConn)
	outcomeRepo := repositories.NewPostgresOutcomeRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	tx := repositories.NewTransactor(dbConn, logger)
	logger.Info("Repositories initialized")

	bracketService := services.NewBracketService(
		tx,
		bracketRepo,
		predictionRepo,
		participantRepo,
		userRepo,
		cfg.DefaultSeason,
		logger,
	)
	leaderboardService := services.NewLeaderboardService(bracketRepo, predictionRepo, outcomeRepo, logger)
	outcomeService := services.NewOutcomeService(tx, outcomeRepo, leaderboardService, wsHub, logger)
	participantService := services.NewParticipantService(tx, participantRepo, logger)
	userService := services.NewUserService(userRepo, logger)
	logger.Info("Services initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Health:      handlers.NewHealthHandler(dbConn),
		Bracket:     handlers.NewBracketHandler(bracketService, leaderboardService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
		Outcome:     handlers.NewOutcomeHandler(outcomeService),
		Participant: handlers.NewParticipantHandler(participantService),
		User:        handlers.NewUserHandler(userService, bracketService),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, leaderboardService, cfg.CORSAllowedOrigins),
	}, api.Options{
		JWTSecret:      []byte(cfg.JWTSecretKey),
		AdminRole:      cfg.AdminRole,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SubmitLimiter:  middleware.PerMinute(cfg.SubmitRatePerMinute),
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		// hijacked websocket-соединения Shutdown не закрывает
		stopHub()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
