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
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/gnames/wcvp/pkg/record"
	"github.com/spf13/cobra"
)

type getQuery struct {
	// hasID is set when --id was given, so that 0 is a valid lookup.
	hasID  bool
	id     int
	powoID string
	name   string
}

// getGetCmd returns the get command.
func getGetCmd() *cobra.Command {
	var q getQuery

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print records found by ID, POWO ID or name",
		Long: `Find records of a WCVP release and print them as JSON.

Exactly one of --id, --powo or --name is required. Names are matched by
their canonical form, so authors and rank markers are ignored.

Examples:
  wcvp get --id 2696480
  wcvp get --powo urn:lsid:ipni.org:names:30000001-2
  wcvp get --name "Bellis perennis L."`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q.hasID = cmd.Flags().Changed("id")
			err := runGet(cmd, q)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	getCmd.Flags().IntVarP(&q.id, "id", "i", 0,
		"plant_name_id of a record")
	getCmd.Flags().StringVarP(&q.powoID, "powo", "p", "",
		"Plants of the World Online identifier")
	getCmd.Flags().StringVarP(&q.name, "name", "n", "",
		"scientific name, with or without authors")
	getCmd.MarkFlagsMutuallyExclusive("id", "powo", "name")
	getCmd.MarkFlagsOneRequired("id", "powo", "name")

	return getCmd
}

func runGet(cmd *cobra.Command, q getQuery) error {
	d, err := loadDataset(cmd.Context())
	if err != nil {
		return err
	}
	defer d.Close()

	res, err := findRecords(d, q)
	if err != nil {
		return err
	}

	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(res)
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}

func findRecords(d *dataset.Dataset, q getQuery) ([]record.Record, error) {
	var res []record.Record
	switch {
	case q.hasID:
		if r, ok := d.ByID(q.id); ok {
			res = append(res, r)
		}
	case q.powoID != "":
		if r, ok := d.ByPowoID(q.powoID); ok {
			res = append(res, r)
		}
	case q.name != "":
		res = d.ByName(q.name)
	default:
		return nil, errors.New("one of --id, --powo, --name is required")
	}

	if len(res) == 0 {
		gn.Warn("No records found")
	}
	return res, nil
}
