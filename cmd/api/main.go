package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/durangezer/portfolio-api/internal/auth"
	"github.com/durangezer/portfolio-api/internal/config"
	contentstore "github.com/durangezer/portfolio-api/internal/content"
	"github.com/durangezer/portfolio-api/internal/database"
	"github.com/durangezer/portfolio-api/internal/guard"
	"github.com/durangezer/portfolio-api/internal/handlers"
	middlewareCustom "github.com/durangezer/portfolio-api/internal/middleware"
	"github.com/durangezer/portfolio-api/internal/repositories"
	"github.com/durangezer/portfolio-api/internal/routes"
	"github.com/durangezer/portfolio-api/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Initialize database
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize repositories
	contactRepo := repositories.NewContactRepository(db)
	pageViewRepo := repositories.NewPageViewRepository(db)
	chatSessionRepo := repositories.NewChatSessionRepository(db)

	// Login attempt store: redis when configured, in-process otherwise
	var attemptStore guard.AttemptStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer client.Close()
		attemptStore = guard.NewRedisStore(client)
		logger.Info("login attempts backed by redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		attemptStore = guard.NewMemoryStore()
	}
	loginGuard := guard.NewLoginAttemptGuard(attemptStore, logger)

	// Token manager and optional TOTP second factor
	tokenManager := auth.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	totpVerifier := auth.NewTOTPVerifier(cfg.Admin.TOTPSecret)

	// AWS SES email service
	emailService, err := services.NewAWSSESEmailService(
		cfg.Email.AWSRegion,
		cfg.Email.FromAddress,
		cfg.Email.ContactAddress,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize email service", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize services
	adminService := services.NewAdminService(cfg.Admin.PasswordHash, tokenManager, totpVerifier, loginGuard, logger)
	contentService := services.NewContentService(
		contentstore.NewStore(cfg.Content.ContentFile),
		cfg.Content.MessagesDir,
		logger,
	)
	contactService := services.NewContactService(contactRepo, emailService, logger)
	analyticsService := services.NewAnalyticsService(pageViewRepo, logger)
	chatService := services.NewChatService(
		chatSessionRepo,
		cfg.AI.APIKey,
		cfg.AI.BaseURL,
		cfg.AI.Model,
		cfg.Content.KnowledgeBase,
		logger,
	)

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(adminService, contentService)
	translationsHandler := handlers.NewTranslationsHandler(contentService)
	contactHandler := handlers.NewContactHandler(contactService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(middlewareCustom.DefaultCORSConfig(cfg.Server.AllowedOrigins)))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	routes.RegisterRoutes(
		router,
		cfg,
		logger,
		adminHandler,
		translationsHandler,
		contactHandler,
		analyticsHandler,
		chatHandler,
		tokenManager,
	)

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.HealthCheck(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
