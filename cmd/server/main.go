package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sahayak-project/sahayak-backend/internal/ai"
	"github.com/sahayak-project/sahayak-backend/internal/config"
	"github.com/sahayak-project/sahayak-backend/internal/logging"
	"github.com/sahayak-project/sahayak-backend/internal/server"
	"github.com/sahayak-project/sahayak-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	st, err := store.Open(store.DefaultDSN)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var svc ai.Service
	switch cfg.AIProvider {
	case config.ProviderGemini:
		svc, err = ai.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("failed to create gemini service: %v", err)
		}
		logger.Info("using gemini generation service", "model", cfg.GeminiModel)
	default:
		svc = ai.NewTemplateService(time.Second)
		logger.Info("using template generation service")
	}

	srv := server.New(cfg, logger, st, svc)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("server stopped")
}
