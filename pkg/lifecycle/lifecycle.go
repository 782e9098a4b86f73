// Package lifecycle defines the steps that move a loaded WCVP dataset into a
// database.
package lifecycle

import (
	"context"

	"github.com/gnames/wcvp/pkg/dataset"
)

// SchemaManager creates and updates tables for exported releases.
// It uses GORM AutoMigrate, so schema management is idempotent.
type SchemaManager interface {
	// Create drops WCVP tables and creates them anew.
	Create(ctx context.Context) error

	// Migrate creates missing tables and columns, keeping data.
	Migrate(ctx context.Context) error
}

// Exporter writes a dataset to a database.
type Exporter interface {
	// Export writes the release row and all names of the dataset.
	// Names of a previously exported release are replaced.
	Export(ctx context.Context, d *dataset.Dataset) error
}
