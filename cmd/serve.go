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
	"github.com/gnames/gn"
	"github.com/gnames/wcvp/internal/iorest"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	var port int

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a WCVP release over a JSON API",
		Long: `Load a WCVP release into memory and answer read-only queries.

Routes (all under /api/v1):
  GET /ping               health check
  GET /version            version of wcvp
  GET /metadata           release metadata and counts
  GET /stats              frequency tables
  GET /records/{id}       record by plant_name_id
  GET /powo/{powo_id}     record by POWO identifier
  GET /names?q={name}     records by canonical form of a name

The server stops on Ctrl-C.

Examples:
  wcvp serve
  wcvp serve --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Update([]config.Option{config.OptServerPort(port)})
			}
			err := runServe(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0,
		"port of the API")

	return serveCmd
}

func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()
	d, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	gn.Info("WCVP API is listening on port <em>%d</em>", cfg.Server.Port)
	return iorest.New(cfg, d).Run(ctx)
}
