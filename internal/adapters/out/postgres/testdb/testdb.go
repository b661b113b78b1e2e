// Package testdb opens migrated databases for tests: an in-memory sqlite
// store for fast tests and a throwaway Postgres container for integration
// tests.
package testdb

import (
	"context"
	"testing"
	"time"

	"pizzastore/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

// NewSQLite returns a migrated private in-memory database. The pool is capped
// at one connection so every statement sees the same memory database.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

// NewPostgres starts a Postgres container and returns a migrated connection.
// It skips the test under -short.
func NewPostgres(t testing.TB) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test skipped in short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("pizzastore"),
		tcpostgres.WithUsername("pizzastore"),
		tcpostgres.WithPassword("pizzastore"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), gormConfig())
	require.NoError(t, err)

	require.NoError(t, postgres.Migrate(db))
	return db
}
