/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/discover"
	"dirpx.dev/discover/config"
	"dirpx.dev/discover/manifest"
	"dirpx.dev/discover/provider/static"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

// options holds the persistent flags shared by all commands.
type options struct {
	configPath string
	logLevel   string
	format     string
	noColor    bool

	file *config.File
	log  *zap.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover annotated types and query them by annotation kind",
		Long: `discover loads a type manifest, collects the annotations of every declared
type (including one level of meta-annotations) and prints the resulting
index from annotation kind to types.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.noColor {
				color.NoColor = true
			}
			f, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				f.LogLevel = o.logLevel
			}
			o.file = f
			o.log, err = newLogger(f.LogLevel)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.configPath, "config", "", "Path to a configuration file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&o.format, "format", "table", "Output format: json or table")
	rootCmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newScanCommand(o))
	rootCmd.AddCommand(newCollectCommand(o))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// newVersionCommand creates the version command
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()
			titleColor.Fprint(out, "discover version: ")
			fmt.Fprintln(out, Version)
			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, runtime.Version())
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// newLogger builds a production logger writing to stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	return cfg.Build()
}

// engine loads the manifest at path and builds an engine over it.
func (o *options) engine(path string) (*discover.Engine, *static.Provider, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	p, err := m.Provider()
	if err != nil {
		return nil, nil, err
	}
	o.log.Debug("manifest loaded", zap.String("path", path), zap.Int("types", len(p.Types())), zap.Int("kinds", p.Kinds()))
	e := discover.New(p,
		discover.WithConfig(o.file.Options()...),
		discover.WithLogger(o.log),
	)
	return e, p, nil
}
