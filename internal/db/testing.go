package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func applyMigrations(t *testing.T, connString string) {
	t.Helper()
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "../../../migrations"
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		t.Fatalf("could not connect to DB for applying migrations: %v", err)
	}
	err = m.Up()
	if !errors.Is(err, migrate.ErrNoChange) && err != nil {
		t.Fatalf("could not apply DB migrations: %v", err)
	}
}

// CreateTestPool connects to the database named by TEST_POSTGRESQL_URL and
// applies migrations. Tests depending on it are skipped when the variable is
// not set, so the unit suite runs without infrastructure.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set")
	}
	applyMigrations(t, connString)

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		t.Fatalf("could not connect to the database: %v", err)
	}
	return pool
}

func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE event")
	if err != nil {
		t.Fatalf("could not truncate DB tables: %v", err)
	}
}
