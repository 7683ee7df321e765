package postgres

import (
	"context"
	"fmt"

	"delivery-service/migrations"
	"delivery-service/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает встроенные миграции goose на базу пула.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	return RunMigrations(ctx, log, pool, "up")
}

// RunMigrations выполняет команду goose (up, down, status, version, redo, reset, up-to N ...)
// над встроенными миграциями.
func RunMigrations(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, command string, args ...string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close migrations connection", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{log: log.With(logger.NewField("component", "goose"))})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("goose version: %w", err)
	}

	log.Info("migrations applied", logger.NewField("version", version))
	return nil
}

type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info(fmt.Sprintf(format, v...))
}

// Fatalf goose вызывает только в CLI-режиме, здесь не завершаем процесс.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(fmt.Sprintf(format, v...))
}
