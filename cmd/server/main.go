// Fraud-check chatbot server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/safepay/fraudcheck/internal/api"
	"github.com/safepay/fraudcheck/internal/config"
	"github.com/safepay/fraudcheck/internal/engine"
	"github.com/safepay/fraudcheck/internal/llm"
	"github.com/safepay/fraudcheck/internal/middleware"
	"github.com/safepay/fraudcheck/internal/store"
	"github.com/safepay/fraudcheck/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Model service client.
	var gen llm.Generator
	if cfg.UseMockLLM {
		slog.Info("Using mock model client")
		gen = llm.NewMock()
	} else {
		slog.Info("Using Gemini model client", "model", cfg.ModelName)
		gen, err = llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			slog.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
	}

	// Session store and conversation engine.
	sessions := store.NewMemory()
	eng := engine.New(sessions, gen, cfg.LLMTimeout)

	chatHandler := api.NewChatHandler(eng)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	chatHandler.RegisterRoutes(r)

	// Serve embedded frontend.
	r.Handle("/*", web.Handler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the session sweeper.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store.StartSweeper(ctx, sessions, cfg.SessionTTL, cfg.SweepInterval, eng.ReleaseSession)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
