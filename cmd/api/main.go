package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	_ "github.com/studyforge/backend/docs"
	"github.com/studyforge/backend/internal/ai"
	"github.com/studyforge/backend/internal/clients/gemini"
	"github.com/studyforge/backend/internal/clients/stripe"
	"github.com/studyforge/backend/internal/clients/youtube"
	"github.com/studyforge/backend/internal/config"
	"github.com/studyforge/backend/internal/handlers"
	"github.com/studyforge/backend/internal/jobs"
	"github.com/studyforge/backend/internal/lock"
	"github.com/studyforge/backend/internal/logger"
	"github.com/studyforge/backend/internal/middlewares"
	"github.com/studyforge/backend/internal/repositories"
	"github.com/studyforge/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	// httpClientTimeout bounds calls to the billing and video APIs
	httpClientTimeout = 20 * time.Second
	lockPrefix        = "studyforge:lock:"
)

// @title StudyForge API
// @version 1.0
// @description API for AI generated courses, study content, the public marketplace and memberships

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Internal API key shared with the web client.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting StudyForge API")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Create Asynq client
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	// Initialize external clients
	geminiClient := gemini.NewClient(gemini.Options{
		APIKey:     cfg.Gemini.APIKey,
		BaseURL:    cfg.Gemini.BaseURL,
		Model:      cfg.Gemini.Model,
		EmbedModel: cfg.Gemini.EmbedModel,
		Timeout:    cfg.Gemini.Timeout,
	})
	stripeClient := stripe.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.BaseURL, httpClientTimeout)
	youtubeClient := youtube.NewClient(cfg.YouTube.APIKey, cfg.YouTube.BaseURL, httpClientTimeout)

	generator := ai.NewGenerator(geminiClient, cfg.Gemini.Timeout, logger.Logger)
	enqueuer := jobs.NewEnqueuer(asynqClient, cfg.Jobs.MaxRetry, cfg.Jobs.Timeout, logger.Logger)
	locker := lock.NewLocker(rdb, lockPrefix)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	notesRepo := repositories.NewChapterNotesRepository(db)
	contentRepo := repositories.NewStudyContentRepository(db)
	upvoteRepo := repositories.NewUpvoteRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	youtubeRepo := repositories.NewYouTubeRepository(db)

	// Initialize services
	ledger := services.NewLedger(userRepo, logger.Logger)
	userService := services.NewUserService(userRepo, logger.Logger)
	// The outline lock outlives the slowest generation call
	courseService := services.NewCourseService(courseRepo, userRepo, ledger, generator, enqueuer, locker, cfg.Gemini.Timeout+30*time.Second, logger.Logger)
	studyContentService := services.NewStudyContentService(courseRepo, contentRepo, notesRepo, enqueuer, logger.Logger)
	marketplaceService := services.NewMarketplaceService(courseRepo, contentRepo, logger.Logger)
	engagementService := services.NewEngagementService(courseRepo, upvoteRepo, favoriteRepo, logger.Logger)
	paymentService := services.NewPaymentService(stripeClient, paymentRepo, userRepo, ledger, enqueuer, locker, logger.Logger)
	youtubeService := services.NewYouTubeService(courseRepo, youtubeRepo, youtubeClient, geminiClient, locker, logger.Logger)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	courseHandler := handlers.NewCourseHandler(courseService, logger.Logger)
	studyContentHandler := handlers.NewStudyContentHandler(studyContentService, logger.Logger)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceService, engagementService, logger.Logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger.Logger)
	youtubeHandler := handlers.NewYouTubeHandler(youtubeService, logger.Logger)

	apiKeyMiddleware := middlewares.APIKeyMiddleware(cfg.APIKey)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(logger.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(apiKeyMiddleware)
			userHandler.RegisterRoutes(r)
			courseHandler.RegisterRoutes(r)
			studyContentHandler.RegisterRoutes(r)
			marketplaceHandler.RegisterRoutes(r)
			paymentHandler.RegisterRoutes(r)
			youtubeHandler.RegisterRoutes(r)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "studyforge_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Binaries run from the repository root or from cmd/api
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		if _, err := os.Stat("../../migrations"); err == nil {
			migrationPath = "file://../../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
