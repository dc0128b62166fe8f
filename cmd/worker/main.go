package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/hibiken/asynq"
	"github.com/studyforge/backend/internal/ai"
	"github.com/studyforge/backend/internal/clients/gemini"
	"github.com/studyforge/backend/internal/config"
	"github.com/studyforge/backend/internal/jobs"
	"github.com/studyforge/backend/internal/logger"
	"github.com/studyforge/backend/internal/repositories"
	"go.uber.org/zap"
)

// chapterConcurrency caps parallel AI calls for the chapters of one course
const chapterConcurrency = 4

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

	logger.Logger.Info("Starting StudyForge Worker")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Follow-up tasks are enqueued from inside handlers
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	geminiClient := gemini.NewClient(gemini.Options{
		APIKey:     cfg.Gemini.APIKey,
		BaseURL:    cfg.Gemini.BaseURL,
		Model:      cfg.Gemini.Model,
		EmbedModel: cfg.Gemini.EmbedModel,
		Timeout:    cfg.Gemini.Timeout,
	})
	generator := ai.NewGenerator(geminiClient, cfg.Gemini.Timeout, logger.Logger)
	enqueuer := jobs.NewEnqueuer(asynqClient, cfg.Jobs.MaxRetry, cfg.Jobs.Timeout, logger.Logger)
	mailer := jobs.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)

	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(db)
	notesRepo := repositories.NewChapterNotesRepository(db)
	contentRepo := repositories.NewStudyContentRepository(db)

	// Create Asynq server
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Jobs.Concurrency,
		Queues:      jobs.Queues,
	})

	processor := jobs.NewProcessor(courseRepo, notesRepo, contentRepo, generator, enqueuer, mailer, chapterConcurrency, logger.Logger)

	// Register task handlers
	mux := asynq.NewServeMux()
	processor.Register(mux)

	// Start worker
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Logger.Fatal("Failed to start worker", zap.Error(err))
		}
	}()

	logger.Logger.Info("Worker started", zap.Int("concurrency", cfg.Jobs.Concurrency))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down worker...")
	srv.Shutdown()
	logger.Logger.Info("Worker exited")
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
