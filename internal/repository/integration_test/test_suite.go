//go:build integration

package integration_test

import (
	"context"
	"log"
	"testing"
	"time"

	"delivery-service/internal/pkg/postgres"
	"delivery-service/pkg/logger"
	"delivery-service/pkg/querier"
	"delivery-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	pool            *pgxpool.Pool
	querierInstance *querier.Querier
)

// Run поднимает Postgres в контейнере, накатывает миграции и запускает тесты пакета.
// Вызывается из TestMain: os.Exit(integration_test.Run(m)).
func Run(m *testing.M) int {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("deliveries_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_pass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres testcontainer: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Printf("failed to get connection string from container: %v", err)
		return 1
	}

	pool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		log.Printf("failed to create pgx pool: %v", err)
		return 1
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, logger.NewNop(), pool); err != nil {
		log.Printf("failed to apply migrations: %v", err)
		return 1
	}

	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)

	return m.Run()
}

func GetQuerier() *querier.Querier {
	return querierInstance
}

func GetTxManager() *tx.Manager {
	return tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted), tx.WithTimeout(5*time.Second))
}

// Ping проверка SELECT 1 через querier.
func Ping(ctx context.Context) error {
	return querierInstance.Ping(ctx)
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE deliveries, drivers RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
