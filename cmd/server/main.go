package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"teamroster/internal/config"
	"teamroster/internal/server"
	"teamroster/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.New()

	// Initialize logger
	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	// Create server
	srv, err := server.New(cfg)
	if err != nil {
		logger.Error(context.Background(), "failed to create server", zap.Error(err))
		os.Exit(1)
	}

	// Disconnect Mongo on shutdown signals
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info(context.Background(), "shutting down")
		if err := srv.Close(); err != nil {
			logger.Error(context.Background(), "error during shutdown", zap.Error(err))
		}
		os.Exit(0)
	}()

	if err := srv.Run(); err != nil {
		logger.Error(context.Background(), "server error", zap.Error(err))
		os.Exit(1)
	}
}
