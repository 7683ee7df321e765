package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"delivery-service/internal/pkg/config"
	"delivery-service/internal/pkg/dotenv"
	"delivery-service/internal/pkg/postgres"
	"delivery-service/pkg/logger"
	"delivery-service/pkg/logger/zap_adapter"
)

const defaultCommand = "up"

// migrate [--env-file path] [command [args...]]
func main() {
	_, args, err := dotenv.LoadArgs(os.Args[1:])
	if err != nil {
		stdlog.Fatalf("failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	command := defaultCommand
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	log := zapLogger.With(logger.NewField("command", command))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
	if err != nil {
		log.Error("database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	err = postgres.RunMigrations(ctx, zapLogger, pool, command, args...)
	if err != nil {
		log.Error("migrations failed", logger.NewField("error", err))
		return
	}
}
