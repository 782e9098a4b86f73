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
	"github.com/gnames/wcvp/internal/iofs"
	"github.com/gnames/wcvp/internal/ioload"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	var clearCache bool

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the WCVP archive into the cache",
		Long: `Download the WCVP release archive and keep it in ~/.cache/wcvp.

Other commands reuse the cached archive, so later runs work offline.
The downloaded file is checked to be a readable zip archive.

Use --refresh to replace an existing cached archive.
Use --clear to remove the cached archive without downloading.

Examples:
  wcvp fetch
  wcvp fetch --refresh
  wcvp fetch --url https://example.org/wcvp.zip
  wcvp fetch --clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runFetch(cmd, clearCache)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	fetchCmd.Flags().BoolVar(&clearCache, "clear", false,
		"remove the cached archive")

	return fetchCmd
}

func runFetch(cmd *cobra.Command, clearCache bool) error {
	if clearCache {
		if err := iofs.ClearCache(cfg.HomeDir); err != nil {
			return err
		}
		gn.Info("Removed cached archive")
		return nil
	}

	path, err := ioload.New(cfg).Fetch(cmd.Context())
	if err != nil {
		return err
	}

	gn.Info("WCVP archive is available at <em>%s</em>", path)
	return nil
}
