package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tms/internal/pkg/config"
	"tms/internal/pkg/dotenv"
	"tms/internal/pkg/postgres"
	"tms/pkg/logger"
	"tms/pkg/logger/zap_adapter"
)

func main() {
	if _, err := dotenv.Load(); err != nil {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter("tms-migrate", cfg.Logger.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
	if err != nil {
		zapLogger.Error("database connection failed", logger.NewField("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		zapLogger.Error("migration failed", logger.NewField("error", err))
		os.Exit(1)
	}
	zapLogger.Info("migrations applied")
}
