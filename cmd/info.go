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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/wcvp/internal/ioload"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/spf13/cobra"
)

// getInfoCmd returns the info command.
func getInfoCmd() *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show release metadata and verify the names table",
		Long: `Load a WCVP release and describe it.

The command prints the version, the extraction date and the number of rows
declared in README_WCVP.xlsx. It compares the declared number with the
records found in wcvp_names.csv and reports overwritten duplicate
identifiers.

The command fails when the number of records does not match README.

Examples:
  wcvp info
  wcvp info --archive ~/data/wcvp.zip`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runInfo(cmd.Context())
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return infoCmd
}

func runInfo(ctx context.Context) error {
	d, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	fmt.Print(infoText(d))
	return d.Verify()
}

func infoText(d *dataset.Dataset) string {
	meta := d.Metadata()
	dups := d.Duplicates()
	return fmt.Sprintf(`
WCVP version:     %s
Extracted:        %s
Declared rows:    %s
Records:          %s
Duplicate IDs:    %s
Duplicate POWO:   %s

`,
		meta.Version,
		meta.Extracted.Format(time.DateOnly),
		humanize.Comma(int64(meta.Rows)),
		humanize.Comma(int64(d.Len())),
		humanize.Comma(int64(dups.IDs)),
		humanize.Comma(int64(dups.PowoIDs)),
	)
}

func loadDataset(ctx context.Context) (*dataset.Dataset, error) {
	return ioload.New(cfg).Load(ctx)
}
