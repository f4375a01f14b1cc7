package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matchdate-backend/internal/auth"
	"matchdate-backend/internal/config"
	"matchdate-backend/internal/handlers"
	"matchdate-backend/internal/middleware"
	"matchdate-backend/internal/pagination"
	"matchdate-backend/internal/repository"
	"matchdate-backend/internal/services"
	"matchdate-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	// Initialize object store for photo binaries
	objectStore, err := storage.NewS3Store(
		context.Background(),
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKey,
		cfg.S3.SecretKey,
		cfg.S3.Endpoint,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create object store")
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo, likeRepo)
	messageService := services.NewMessageService(messageRepo, userRepo)
	photoService := services.NewPhotoService(photoRepo, objectStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	messageHandler := handlers.NewMessageHandler(messageService)
	photoHandler := handlers.NewPhotoHandler(photoService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))
			r.Use(middleware.TrackActivity(userRepo))

			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.Get)
			r.Put("/users/{id}", userHandler.Update)
			r.Post("/users/{id}/like/{recipientId}", userHandler.Like)

			r.Get("/users/{id}/messages", messageHandler.List)
			r.Post("/users/{id}/messages", messageHandler.Create)
			r.Get("/users/{id}/messages/thread/{recipientId}", messageHandler.Thread)
			r.Get("/users/{id}/messages/{messageId}", messageHandler.Get)
			r.Post("/users/{id}/messages/{messageId}", messageHandler.Delete)

			r.Post("/users/{id}/photos", photoHandler.Upload)
			r.Get("/users/{id}/photos/{photoId}", photoHandler.Get)
			r.Post("/users/{id}/photos/{photoId}/setMain", photoHandler.SetMain)
			r.Delete("/users/{id}/photos/{photoId}", photoHandler.Delete)
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS and exposes the pagination header to browsers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", pagination.HeaderName)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
