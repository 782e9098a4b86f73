package ioexport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wcvp/internal/ioschema"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/db"
	"github.com/gnames/wcvp/pkg/lifecycle"
	"github.com/gnames/wcvp/pkg/schema"
	"github.com/jackc/pgx/v5"
)

type postgres struct {
	cfg      *config.Config
	operator db.Operator
}

// NewPostgres creates an exporter that writes to the database of a
// connected operator.
func NewPostgres(cfg *config.Config, op db.Operator) lifecycle.Exporter {
	return &postgres{cfg: cfg, operator: op}
}

// Export prepares tables and replaces their content with the dataset.
// All writes happen in one transaction, so a failed export leaves the
// previous release intact.
func (p *postgres) Export(ctx context.Context, d *dataset.Dataset) error {
	pool := p.operator.Pool()
	if pool == nil {
		return ioschema.NotConnectedError()
	}

	sm := ioschema.NewManager(p.operator)
	prepare := sm.Migrate
	if p.cfg.Export.Force {
		prepare = sm.Create
	}
	if err := prepare(ctx); err != nil {
		return err
	}

	start := time.Now()
	tx, err := pool.Begin(ctx)
	if err != nil {
		return ExportPostgresError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var release schema.Release
	var name schema.Name
	for _, table := range []string{release.TableName(), name.TableName()} {
		q := "DELETE FROM " + pgx.Identifier{table}.Sanitize()
		if _, err = tx.Exec(ctx, q); err != nil {
			return ExportPostgresError("clean "+table, err)
		}
	}

	release = schema.NewRelease(d, time.Now())
	_, err = tx.Exec(ctx, pgInsertSQL(release), schema.Values(release)...)
	if err != nil {
		return ExportPostgresError("insert release", err)
	}

	count, err := p.copyNames(ctx, tx, d)
	if err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return ExportPostgresError("commit", err)
	}

	dur := time.Since(start)
	slog.Info("Exported WCVP to PostgreSQL",
		"database", p.cfg.Database.Database,
		"version", release.Version,
		"names", count,
		"duration", dur,
	)
	if p.cfg.Archive.Progress {
		gn.Info(
			"Exported <em>%s</em> names to PostgreSQL database <em>%s</em> in %s",
			humanize.Comma(int64(count)),
			p.cfg.Database.Database,
			gnfmt.TimeString(dur.Seconds()),
		)
	}
	return nil
}

// copyNames streams rows with CopyFrom in batches of Export.BatchSize.
func (p *postgres) copyNames(
	ctx context.Context,
	tx pgx.Tx,
	d *dataset.Dataset,
) (int, error) {
	var name schema.Name
	table := pgx.Identifier{name.TableName()}
	columns := schema.Columns(name)
	batchSize := max(p.cfg.Export.BatchSize, 1)

	bar := newBar(d.Len(), "Exporting names: ", p.cfg.Archive.Progress)
	defer finish(bar)

	var count int
	rows := make([][]any, 0, batchSize)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		n, err := tx.CopyFrom(ctx, table, columns, pgx.CopyFromRows(rows))
		if err != nil {
			return ExportPostgresError("copy names", err)
		}
		count += int(n)
		add(bar, len(rows))
		rows = rows[:0]
		return nil
	}

	for n := range names(d) {
		rows = append(rows, schema.Values(n))
		if len(rows) == batchSize {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}
	if err := flush(); err != nil {
		return count, err
	}

	return count, nil
}

// pgInsertSQL builds an INSERT statement with numbered placeholders.
func pgInsertSQL(m schema.DDLGenerator) string {
	cols := schema.Columns(m)
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		m.TableName(), strings.Join(cols, ", "), strings.Join(marks, ", "))
}
