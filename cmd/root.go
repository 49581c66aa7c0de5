/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

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
	"github.com/gnames/gnlineage/internal/iodump"
	"github.com/gnames/gnlineage/internal/iofs"
	"github.com/gnames/gnlineage/internal/iologger"
	gnlineage "github.com/gnames/gnlineage/pkg"
	"github.com/gnames/gnlineage/pkg/config"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd returns the root command that finds lineages of names.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnlineage.Version, gnlineage.Build),
		Use:   "gnlineage [flags] [names...]",
		Args:  cobra.ArbitraryArgs,
		Short: "Finds taxonomic lineages of names in NCBI taxonomy",
		Long: `GNlineage finds taxonomic lineages of names using NCBI taxonomy
dump files (names.dmp and nodes.dmp from taxdump.tar.gz), and the last
common node of several names.

Names are given as arguments (several names can be separated by commas)
or in a file, one or more names per line. Matching is exact but ignores
case and surrounding spaces. Scientific names, synonyms and common names
are all recognized.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNLINEAGE_*)
  3. Config file (~/.config/gnlineage/config.yaml)
  4. Built-in defaults

Examples:
  gnlineage -d ~/taxdump "Homo sapiens"
  gnlineage -d ~/taxdump -s -c "Homo sapiens, Pan troglodytes"
  gnlineage -d ~/taxdump -i names.txt -o Lineage.txt -f tsv`,
		PersistentPreRunE: bootstrap,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnlineage version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnlineage")

	pf := rootCmd.PersistentFlags()
	pf.StringP("dump-dir", "d", "", "directory with names.dmp and nodes.dmp")
	pf.String("names", "", "path to names file (default names.dmp)")
	pf.String("nodes", "", "path to nodes file (default nodes.dmp)")
	pf.BoolP("quiet", "q", false, "do not show progress bars")

	f := rootCmd.Flags()
	f.BoolP("short", "s", false, "remove hidden taxa from lineages")
	f.BoolP("common", "c", false, "find the last common node of all names")
	f.StringP("input", "i", "", "file with names")
	f.StringP("output", "o", "", "file for results (default STDOUT)")
	f.StringP("format", "f", "",
		"output format: "+strings.Join(output.FormatNames(), ", "))

	rootCmd.AddCommand(getServeCmd())
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
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

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = initLogging(defaultLog, false); err != nil {
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
	opts = append(opts, config.OptHomeDir(homeDir))
	cfg.Update(opts)

	// Reconfigure logging with user's settings, keeping startup records
	if err = initLogging(cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

func initLogging(logCfg config.LogConfig, append bool) error {
	if logCloser != nil {
		logCloser.Close()
	}
	var err error
	logCloser, err = iologger.Init(config.LogDir(homeDir), logCfg, append)
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg.Update(flagOptions(cmd))

	queries, err := getQueries(cmd, args)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return cmd.Help()
	}

	format, err := output.NewFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	resolver, err := iodump.Load(ctx, cfg)
	if err != nil {
		return err
	}

	res := lineage.Batch(resolver, queries, lineage.Options{
		Short:      cfg.Lineage.Short,
		WithCommon: cfg.Lineage.WithCommon,
	})
	logResult(res)

	return writeResult(cmd, res, format)
}

func getQueries(cmd *cobra.Command, args []string) ([]string, error) {
	var res []string
	for _, v := range args {
		res = append(res, lineage.SplitQueries(v)...)
	}

	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		return res, nil
	}
	qs, err := iofs.ReadQueries(input)
	if err != nil {
		return nil, err
	}
	return append(res, qs...), nil
}

func writeResult(
	cmd *cobra.Command,
	res lineage.Result,
	format output.Format,
) error {
	var w io.Writer = cmd.OutOrStdout()
	path, _ := cmd.Flags().GetString("output")
	if path != "" {
		f, err := iofs.CreateOutput(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if _, err := io.WriteString(w, output.Header(format)); err != nil {
		return iofs.WriteFileError(outputName(path), err)
	}
	if err := output.Write(w, res, format); err != nil {
		return iofs.WriteFileError(outputName(path), err)
	}
	return nil
}

func outputName(path string) string {
	if path == "" {
		return "STDOUT"
	}
	return path
}

func logResult(res lineage.Result) {
	var found, notFound int
	for _, v := range res.Reports {
		switch {
		case v.Found():
			found++
		case v.NotFound():
			notFound++
		default:
			slog.Warn("Cannot resolve lineage", "query", v.Query, "error", v.Err)
		}
	}
	slog.Info("Lineages resolved",
		"queries", len(res.Reports),
		"found", found,
		"not_found", notFound,
	)
	if res.Common.Found() {
		slog.Info("Last common node found", "name", res.Common.Taxon.Name)
	}
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
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

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one so that it is clear
	// which of them are allowed. They match fields of config.ToOptions().
	v.SetEnvPrefix("GNLINEAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Dump configuration
	v.BindEnv("dump.dir", "GNLINEAGE_DUMP_DIR")
	v.BindEnv("dump.names_file", "GNLINEAGE_DUMP_NAMES_FILE")
	v.BindEnv("dump.nodes_file", "GNLINEAGE_DUMP_NODES_FILE")
	v.BindEnv("dump.root_id", "GNLINEAGE_DUMP_ROOT_ID")

	// Output configuration
	v.BindEnv("output.format", "GNLINEAGE_OUTPUT_FORMAT")

	// Server configuration
	v.BindEnv("server.port", "GNLINEAGE_SERVER_PORT")
	v.BindEnv("server.cache_size", "GNLINEAGE_SERVER_CACHE_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNLINEAGE_LOG_LEVEL")
	v.BindEnv("log.format", "GNLINEAGE_LOG_FORMAT")
	v.BindEnv("log.destination", "GNLINEAGE_LOG_DESTINATION")

	v.AutomaticEnv()
}
