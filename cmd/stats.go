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
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wcvp/pkg/stats"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getStatsCmd returns the stats command.
func getStatsCmd() *cobra.Command {
	var (
		format string
		top    int
	)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print frequency tables of a WCVP release",
		Long: `Count records by taxonomic rank, lifeform description and
geographic area. Tables are sorted by descending count.

Formats: json (compact), pretty (indented json), yaml.

Examples:
  wcvp stats
  wcvp stats --format yaml --top 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runStats(cmd, format, top)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	statsCmd.Flags().StringVarP(&format, "format", "f", "pretty",
		"output format: json, pretty or yaml")
	statsCmd.Flags().IntVarP(&top, "top", "t", 0,
		"show only the most frequent entries of each table (0 = all)")

	return statsCmd
}

func runStats(cmd *cobra.Command, format string, top int) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	d, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	bs, err := encodeStats(limitStats(d.Statistics(), top), format)
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "yaml", "json", "pretty":
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func encodeStats(st stats.Statistics, format string) ([]byte, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	switch format {
	case "yaml":
		return yaml.Marshal(st)
	case "json":
		return gnfmt.GNjson{}.Encode(st)
	default:
		return gnfmt.GNjson{Pretty: true}.Encode(st)
	}
}

func limitStats(st stats.Statistics, top int) stats.Statistics {
	if top <= 0 {
		return st
	}
	st.TaxonRanks = st.TaxonRanks[:min(top, len(st.TaxonRanks))]
	st.LifeformDescriptions = st.LifeformDescriptions[:min(top, len(st.LifeformDescriptions))]
	st.GeographicAreas = st.GeographicAreas[:min(top, len(st.GeographicAreas))]
	return st
}
