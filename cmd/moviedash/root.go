package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/neymango11/Movie/internal/config"
)

// app is the state shared by all subcommands for one invocation.
type app struct {
	cfgPath        string
	csvPath        string
	url            string
	embeddedPath   string
	seed           uint64
	verbose        bool
	metricsBackend string

	cfg     config.Dashboard
	logger  *zap.Logger
	cleanup func()
}

// newRootCmd returns the command tree and the app it populates. Callers own
// a.close, which must run whether or not the command succeeded.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "moviedash",
		Short: "Movie box office dashboard",
		Long: `moviedash loads the movie table (bundled rows, a CSV file or URL, or
generated sample data as a last resort) and prints the dashboard views for a
genre, rating and latest release year selection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "dashboard config JSON path (default: built-in defaults)")
	pf.StringVar(&a.csvPath, "csv", "", "read the movie table from this CSV file")
	pf.StringVar(&a.url, "url", "", "fetch the movie table from this URL")
	pf.StringVar(&a.embeddedPath, "embedded", "", "JSON rows file that takes priority over the table")
	pf.Uint64Var(&a.seed, "seed", 0, "seed for generated sample data (0 = random)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logs")
	pf.StringVar(&a.metricsBackend, "metrics-backend", "", "metrics backend: none, pushgateway or datadog (overrides env METRICS_BACKEND)")

	root.AddCommand(newShowCmd(a), newOptionsCmd(a), newValidateCmd(a))
	return root, a
}

// init builds the logger and resolves the configuration: file, then flags.
func (a *app) init(cmd *cobra.Command) error {
	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = applyFlags(cfg, a, cmd)
	a.logger.Debug("config resolved",
		zap.String("config", a.cfgPath),
		zap.String("source", a.cfg.Source.Kind),
		zap.String("parser", a.cfg.Parser.Kind))
	return nil
}

// applyFlags overlays explicitly set flags on cfg.
func applyFlags(cfg config.Dashboard, a *app, cmd *cobra.Command) config.Dashboard {
	flags := cmd.Flags()
	if a.csvPath != "" {
		cfg.Source = config.Source{Kind: "file", File: config.SourceFile{Path: a.csvPath}}
	}
	if a.url != "" {
		cfg.Source = config.Source{Kind: "http", HTTP: config.SourceHTTP{URL: a.url}}
	}
	if a.embeddedPath != "" {
		cfg.Embedded = config.Embedded{Path: a.embeddedPath}
	}
	if flags.Changed("seed") {
		cfg.Sample.Seed = a.seed
	}
	return cfg
}

// close flushes metrics and syncs the logger. It is safe to call more than
// once.
func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
