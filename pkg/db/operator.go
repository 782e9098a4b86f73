package db

import (
	"context"

	"github.com/gnames/wcvp/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines basic PostgreSQL management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for components that need CopyFrom or transactions.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// DropTables drops the given tables if they exist.
	DropTables(ctx context.Context, tableNames ...string) error
}
