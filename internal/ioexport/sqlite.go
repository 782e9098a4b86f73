package ioexport

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/lifecycle"
	"github.com/gnames/wcvp/pkg/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

type sqlite struct {
	cfg *config.Config
}

// NewSQLite creates an exporter that writes a standalone SQLite file to
// Export.SQLitePath.
func NewSQLite(cfg *config.Config) lifecycle.Exporter {
	return &sqlite{cfg: cfg}
}

// Export replaces the SQLite file with a new one holding the dataset.
// Indexes are created after the data is inserted.
func (s *sqlite) Export(ctx context.Context, d *dataset.Dataset) error {
	path := s.cfg.Export.SQLitePath
	start := time.Now()

	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return ExportSQLiteError(path, err)
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return ExportSQLiteError(path, err)
	}
	defer sqlDB.Close()

	models := schema.AllModels()
	for _, m := range models {
		if _, err = sqlDB.ExecContext(ctx, m.TableDDL()); err != nil {
			return ExportSQLiteError(path, err)
		}
	}

	count, err := s.insert(ctx, sqlDB, d)
	if err != nil {
		return ExportSQLiteError(path, err)
	}

	for _, m := range models {
		for _, q := range m.IndexDDL() {
			if _, err = sqlDB.ExecContext(ctx, q); err != nil {
				return ExportSQLiteError(path, err)
			}
		}
	}

	dur := time.Since(start)
	slog.Info("Exported WCVP to SQLite",
		"path", path,
		"names", count,
		"duration", dur,
	)
	if s.cfg.Archive.Progress {
		gn.Info(
			"Exported <em>%s</em> names to <em>%s</em> in %s",
			humanize.Comma(int64(count)),
			path,
			gnfmt.TimeString(dur.Seconds()),
		)
	}
	return nil
}

func (s *sqlite) insert(
	ctx context.Context,
	sqlDB *sql.DB,
	d *dataset.Dataset,
) (int, error) {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	release := schema.NewRelease(d, time.Now())
	_, err = tx.ExecContext(ctx, schema.InsertSQL(release),
		schema.Values(release)...)
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, schema.InsertSQL(schema.Name{}))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	bar := newBar(d.Len(), "Exporting names: ", s.cfg.Archive.Progress)
	defer finish(bar)

	var count int
	for n := range names(d) {
		if _, err = stmt.ExecContext(ctx, schema.Values(n)...); err != nil {
			return count, err
		}
		count++
		add(bar, 1)
	}

	if err = tx.Commit(); err != nil {
		return count, err
	}
	return count, nil
}
