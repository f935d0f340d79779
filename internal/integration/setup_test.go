package integration

import (
	"context"
	"os"
	"testing"

	"tasktracker/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// setupPool connects to the test database, applies the schema and clears
// all rows. Tests are skipped entirely when DATABASE_URL is not set.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.InitSchema(context.Background(), pool); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	if _, err := pool.Exec(context.Background(), `TRUNCATE tasks RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return pool
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int64 {
	t.Helper()
	var n int64
	if err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
