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
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/wcvp/internal/iofs"
	"github.com/gnames/wcvp/internal/iologger"
	app "github.com/gnames/wcvp/pkg"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
	logFile io.Closer
)

// getRootCmd builds the command tree.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "wcvp",
		Short:   "Load and query World Checklist of Vascular Plants releases",
		Long: `wcvp reads a World Checklist of Vascular Plants (WCVP) release archive
published by the Royal Botanic Gardens, Kew.

The archive is a zip file with README_WCVP.xlsx (release metadata) and
wcvp_names.csv (pipe-delimited names table). By default the latest archive
is downloaded from Kew and cached in ~/.cache/wcvp.

Configuration is read from ~/.config/wcvp/config.yaml and WCVP_*
environment variables.

Examples:
  wcvp fetch
  wcvp info
  wcvp get --id 2696480
  wcvp stats --format yaml
  wcvp export --target sqlite -o wcvp.sqlite
  wcvp serve --port 8080`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: shutdown,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "wcvp version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	// -V is consistent with other gn projects
	rootCmd.Flags().BoolP("version", "V", false, "version for wcvp")

	pf := rootCmd.PersistentFlags()
	pf.StringP("archive", "a", "",
		"path to a local WCVP zip archive (skips download)")
	pf.StringP("url", "u", "",
		"URL of the WCVP archive")
	pf.BoolP("refresh", "r", false,
		"download the archive even if it is cached")
	pf.BoolP("quiet", "q", false,
		"hide progress bars and summaries")
	pf.IntP("jobs", "j", 0,
		"number of concurrent workers")

	rootCmd.AddCommand(
		getFetchCmd(),
		getInfoCmd(),
		getGetCmd(),
		getStatsCmd(),
		getExportCmd(),
		getServeCmd(),
	)

	return rootCmd
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := getRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})
	cfg.Update(persistentFlagOptions(cmd))

	logFile, err = iologger.Init(config.LogDir(homeDir), cfg.Log, false)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)
	return nil
}

func shutdown(_ *cobra.Command, _ []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// persistentFlagOptions converts explicitly set global flags to options.
func persistentFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("archive") {
		s, _ := flags.GetString("archive")
		res = append(res, config.OptArchivePath(s))
	}
	if flags.Changed("url") {
		s, _ := flags.GetString("url")
		res = append(res, config.OptArchiveURL(s))
	}
	if flags.Changed("refresh") {
		b, _ := flags.GetBool("refresh")
		res = append(res, config.OptArchiveRefresh(b))
	}
	if flags.Changed("quiet") {
		b, _ := flags.GetBool("quiet")
		res = append(res, config.OptArchiveProgress(!b))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	// missing keys keep default values
	res := config.New()
	if err = v.Unmarshal(res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound explicitly, so it is clear which ones
	// are allowed. They match the fields of config.ToOptions().
	v.SetEnvPrefix("WCVP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"archive.url",
		"archive.timeout",
		"archive.use_cache",
		"archive.progress",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.database",
		"database.ssl_mode",
		"export.batch_size",
		"export.sqlite_path",
		"server.port",
		"log.level",
		"log.format",
		"log.destination",
		"jobs_number",
	}
	for _, k := range keys {
		env := "WCVP_" + strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		_ = v.BindEnv(k, env)
	}

	v.AutomaticEnv()
}
