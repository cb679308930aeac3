package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/exam-site-backend/internal/config"
	"github.com/stemsi/exam-site-backend/internal/database"
	"github.com/stemsi/exam-site-backend/internal/handler"
	"github.com/stemsi/exam-site-backend/internal/logger"
	"github.com/stemsi/exam-site-backend/internal/middleware"
	"github.com/stemsi/exam-site-backend/internal/repository"
	"github.com/stemsi/exam-site-backend/internal/router"
	"github.com/stemsi/exam-site-backend/internal/service"
	"github.com/stemsi/exam-site-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting exam site backend")

	if cfg.SpreadsheetID == "" {
		log.Fatal().Msg("SPREADSHEET_ID is required")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Google Sheets ──────────────────────────────────────
	sheetsClient, err := database.NewSheetsClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Sheets client")
	}

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Rate Limiter ──────────────────────────────────────────────────
	var limiter middleware.Limiter
	switch {
	case cfg.RateLimitPerMinute <= 0:
		log.Info().Msg("Rate limiting disabled")
	case rdb != nil:
		limiter = middleware.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
	default:
		memLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	// ─── Initialize Repositories & Services ────────────────────────────
	sheetRepo := repository.NewSheetRepository(sheetsClient, cfg.SpreadsheetID)
	categoryService := service.NewCategoryService(sheetRepo, log)
	questionService := service.NewQuestionService(sheetRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Quiz:   handler.NewQuizHandler(categoryService, questionService),
		System: handler.NewSystemHandler(rdb, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, limiter, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", "http://localhost:"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
