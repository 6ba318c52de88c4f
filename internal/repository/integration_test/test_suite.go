//go:build integration

package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgpool "tms/internal/pkg/postgres"
	"tms/pkg/logger/zap_adapter"
	"tms/pkg/querier"
	"tms/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

// setup поднимает postgres в контейнере (или берет TEST_POSTGRES_DSN) и накатывает миграции.
// Контейнер удаляет reaper testcontainers после завершения процесса.
func setup() {
	suiteOnce.Do(func() {
		ctx := context.Background()

		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			container, err := postgres.Run(ctx,
				"postgres:16-alpine",
				postgres.WithDatabase("tms"),
				postgres.WithUsername("tms"),
				postgres.WithPassword("tms"),
				testcontainers.WithWaitStrategy(
					wait.ForLog("database system is ready to accept connections").
						WithOccurrence(2).
						WithStartupTimeout(60*time.Second),
				),
			)
			if err != nil {
				log.Fatalf("failed to start postgres container: %v", err)
			}

			dsn, err = container.ConnectionString(ctx, "sslmode=disable")
			if err != nil {
				log.Fatalf("failed to get connection string: %v", err)
			}
		}

		pool, err := pgpool.Connect(ctx, zap_adapter.NewNop(), dsn)
		if err != nil {
			log.Fatalf("failed to connect: %v", err)
		}

		if err := pgpool.Migrate(ctx, pool); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE
			notifications,
			trip_driver_expenses,
			order_trip_statuses,
			order_trips,
			order_process_groups,
			order_group_statuses,
			orders,
			order_groups,
			route_driver_expenses,
			driver_expenses,
			routes,
			drivers,
			vehicles,
			vehicle_types,
			customers,
			warehouses
		RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
