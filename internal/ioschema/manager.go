// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/wcvp/pkg/db"
	"github.com/gnames/wcvp/pkg/lifecycle"
	"github.com/gnames/wcvp/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create drops WCVP tables and creates them with GORM
// AutoMigrate. Also applies collation settings for
// correct scientific name sorting.
func (m *manager) Create(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}

	var tables []string
	for _, v := range schema.AllModels() {
		tables = append(tables, v.TableName())
	}
	if err := m.operator.DropTables(ctx, tables...); err != nil {
		return CreateSchemaError(err)
	}

	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	if err := m.setCollation(ctx); err != nil {
		return err
	}

	slog.Info("Created WCVP tables", "tables", tables)
	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}

	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	return nil
}

func (m *manager) gorm() (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(m.operator.Pool())

	res, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return res, nil
}

// setCollation sets "C" collation on name columns. This is
// critical for correct sorting and comparison of scientific
// names.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()

	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"wcvp_names", "taxon_name", 500},
		{"wcvp_names", "canonical", 255},
	}

	qStr := `ALTER TABLE %s ALTER COLUMN %s ` +
		`TYPE VARCHAR(%d) COLLATE "C"`

	for _, col := range columns {
		q := formatCollationSQL(qStr, col.table,
			col.column, col.varchar)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
