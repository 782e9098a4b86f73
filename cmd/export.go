/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/internal/iodb"
	"github.com/gnames/wcvp/internal/ioexport"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var (
		target    string
		force     bool
		output    string
		batchSize int
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a WCVP release to PostgreSQL or SQLite",
		Long: `Load a WCVP release and write it to a database.

Targets:
  postgres  Tables wcvp_releases and wcvp_names are migrated with
            GORM AutoMigrate, their rows are replaced in one transaction
            and names are copied in batches.
  sqlite    A new SQLite file is created with the same tables.

Every name gets the UUID v5 of the full name and of its canonical form,
compatible with other GlobalNames indices.

Use --force to drop and recreate PostgreSQL tables.

Examples:
  wcvp export
  wcvp export --force
  wcvp export --target sqlite --output ~/wcvp.sqlite`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var exportOpts []config.Option
			if cmd.Flags().Changed("force") {
				exportOpts = append(exportOpts, config.OptExportForce(force))
			}
			if cmd.Flags().Changed("output") {
				exportOpts = append(exportOpts, config.OptExportSQLitePath(output))
			}
			if cmd.Flags().Changed("batch-size") {
				exportOpts = append(exportOpts, config.OptExportBatchSize(batchSize))
			}
			cfg.Update(exportOpts)

			err := runExport(cmd.Context(), target)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().StringVarP(&target, "target", "t", "postgres",
		"export target: postgres or sqlite")
	exportCmd.Flags().BoolVarP(&force, "force", "f", false,
		"drop and recreate PostgreSQL tables")
	exportCmd.Flags().StringVarP(&output, "output", "o", "",
		"SQLite file to create")
	exportCmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0,
		"names per PostgreSQL batch")

	return exportCmd
}

func runExport(ctx context.Context, target string) error {
	if target != "postgres" && target != "sqlite" {
		return fmt.Errorf("unknown export target %q", target)
	}

	d, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	if err = d.Verify(); err != nil {
		gn.PrintErrorMessage(err)
		gn.Warn("Exporting records found in the names table")
	}

	if target == "sqlite" {
		return ioexport.NewSQLite(cfg).Export(ctx, d)
	}
	return exportPostgres(ctx, d)
}

func exportPostgres(ctx context.Context, d *dataset.Dataset) error {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	return ioexport.NewPostgres(cfg, op).Export(ctx, d)
}
