package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/gnames/wcvp/internal/iodb"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/db"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "wcvp_test"
)

// DatabaseConfig returns PostgreSQL settings for integration tests.
// Defaults can be changed with WCVP_DATABASE_HOST, WCVP_DATABASE_PORT,
// WCVP_DATABASE_USER and WCVP_DATABASE_PASSWORD. The database name is
// always TestDatabaseName.
func DatabaseConfig() *config.Config {
	cfg := config.New()
	opts := []config.Option{config.OptDatabaseDatabase(TestDatabaseName)}
	if s := os.Getenv("WCVP_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("WCVP_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("WCVP_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("WCVP_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)
	return cfg
}

// Operator connects to the test database. The test is skipped in short mode
// or when PostgreSQL is not reachable.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    op, cfg := iotesting.Operator(t)
//	    // ... use op.Pool() and cfg
//	}
func Operator(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := DatabaseConfig()
	op := iodb.NewPgxOperator()
	if err := op.Connect(context.Background(), &cfg.Database); err != nil {
		t.Skipf("PostgreSQL test database is not available: %v", err)
	}
	t.Cleanup(func() { _ = op.Close() })
	return op, cfg
}
