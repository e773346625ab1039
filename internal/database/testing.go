package database

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// TestDatabaseURLEnv names the variable that enables Postgres integration tests.
const TestDatabaseURLEnv = "PADDOCK_TEST_DATABASE_URL"

// SetupTestDB connects to the database named by PADDOCK_TEST_DATABASE_URL,
// migrates it and truncates every table. The test is skipped when the variable is unset.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv(TestDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("Integration test - set %s to run", TestDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	if err := Migrate(ctx, quiet, dsn); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db, err := NewDBFromDSN(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	truncate(t, db)
	t.Cleanup(func() { TeardownTestDB(t, db) })

	return db
}

// TeardownTestDB truncates every table and closes the pool.
func TeardownTestDB(t *testing.T, db *DB) {
	t.Helper()
	truncate(t, db)
	db.Close()
}

func truncate(t *testing.T, db *DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.pool.Exec(ctx,
		"TRUNCATE TABLE race_results, races, cars, team_drivers, drivers, teams, classes, addresses CASCADE")
	if err != nil {
		t.Logf("warning: failed to truncate test tables: %v", err)
	}
}
