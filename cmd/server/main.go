package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canvas-server/internal/config"
	"canvas-server/internal/handler"
	"canvas-server/internal/logger"
	"canvas-server/internal/repository"
	"canvas-server/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
		Service:  "canvas-server",
		Env:      cfg.Env,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Configuration loaded",
		zap.String("addr", cfg.Addr()),
		zap.String("dist_dir", cfg.DistDir),
		zap.Duration("questions_delay", cfg.QuestionsDelay),
		zap.Duration("suggestions_delay", cfg.SuggestionsDelay),
	)

	// --- Dependency Injection ---
	sectionRepo, err := repository.NewStaticSectionRepository()
	if err != nil {
		zap.L().Fatal("Failed to load section content", zap.Error(err))
	}
	advisorSvc := service.NewAdvisorService(sectionRepo, service.Delays{
		Questions:   cfg.QuestionsDelay,
		Suggestions: cfg.SuggestionsDelay,
	}, log.Named("AdvisorService"))
	advisorHandler := handler.NewAdvisorHandler(advisorSvc, log.Named("AdvisorHandler"))

	router := handler.NewRouter(cfg, advisorHandler, log)

	// --- Start HTTP Server ---
	// WriteTimeout has to outlast the artificial delays.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15*time.Second + cfg.QuestionsDelay + cfg.SuggestionsDelay,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.L().Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
