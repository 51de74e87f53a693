package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/neymango11/Movie/internal/aggregate"
	"github.com/neymango11/Movie/internal/config"
	"github.com/neymango11/Movie/internal/dataset"
	"github.com/neymango11/Movie/internal/filter"
	"github.com/neymango11/Movie/internal/metrics"
	"github.com/neymango11/Movie/internal/report"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		genre   string
		rating  string
		maxYear string
		top     int
		format  string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the dashboard for a filter selection",
		Example: `  # Everything, latest year ceiling
  moviedash show

  # Action movies rated PG-13 released up to 2005, as JSON
  moviedash show --genre Action --rating PG-13 --max-year 2005 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := filter.ParseSpec(genre, rating, maxYear)
			if err != nil {
				return err
			}
			ds, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-year") {
				spec.MaxYear = filter.Reset(ds.Movies).MaxYear
			}
			r := buildReport(a.cfg.Job, ds, spec, top, a.logger)
			return report.Write(cmd.OutOrStdout(), r, format)
		},
	}
	f := cmd.Flags()
	f.StringVar(&genre, "genre", filter.All, "genre to show, or all")
	f.StringVar(&rating, "rating", filter.All, "rating to show, or all")
	f.StringVar(&maxYear, "max-year", "", "latest release year to include (default: latest in the data)")
	f.IntVar(&top, "top", aggregate.TopNDefault, "size of the box office ranking")
	f.StringVar(&format, "format", report.FormatTable, "output format: table, json or csv")
	return cmd
}

// buildReport filters ds and aggregates the view, recording both steps.
func buildReport(job string, ds dataset.Dataset, spec filter.Spec, top int, logger *zap.Logger) report.Report {
	start := time.Now()
	view := filter.Apply(ds.Movies, spec)
	metrics.RecordStep(job, "filter", nil, time.Since(start))
	metrics.RecordRow(job, "view", int64(len(view)))
	logger.Debug("filter applied", zap.Stringer("filter", spec), zap.Int("view", len(view)))

	start = time.Now()
	r := report.Build(ds, spec, view, top)
	metrics.RecordStep(job, "aggregate", nil, time.Since(start))
	return r
}

// load wires the loader and metrics from the resolved config and runs one
// load.
func (a *app) load(ctx context.Context) (dataset.Dataset, error) {
	issues := config.ValidateDashboard(a.cfg)
	for _, iss := range issues {
		a.logger.Warn("config issue", zap.String("severity", string(iss.Severity)),
			zap.String("path", iss.Path), zap.String("message", iss.Message))
	}
	if config.HasErrors(issues) {
		return dataset.Dataset{}, fmt.Errorf("configuration is invalid; run moviedash validate")
	}

	a.cleanup = setupMetricsFn(a.cfg, a.metricsBackend, a.logger)
	l, err := buildLoader(a.cfg, a.logger)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("build loader: %w", err)
	}
	return l.Load(ctx)
}

func newOptionsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the values the genre, rating and year filters accept",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			return report.WriteOptions(cmd.OutOrStdout(), report.BuildOptions(ds), format)
		},
	}
	cmd.Flags().StringVar(&format, "format", report.FormatTable, "output format: table or json")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Lint the dashboard configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			issues := config.ValidateDashboard(a.cfg)
			for _, iss := range issues {
				fmt.Fprintln(cmd.ErrOrStderr(), iss.Error())
			}
			if config.HasErrors(issues) {
				return fmt.Errorf("configuration is invalid (%d issues)", len(issues))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid (%d warnings)\n", len(issues))
			return nil
		},
	}
}
