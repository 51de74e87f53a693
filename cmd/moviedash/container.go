package main

// container.go wires configuration to the data core: it picks the embedded
// rows, the external source, the parser, the raw transform chain, the sample
// generator and the metrics backend. Nothing here touches movie semantics.

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/neymango11/Movie/internal/config"
	"github.com/neymango11/Movie/internal/dataset"
	"github.com/neymango11/Movie/internal/datasource"
	"github.com/neymango11/Movie/internal/datasource/file"
	"github.com/neymango11/Movie/internal/datasource/httpds"
	"github.com/neymango11/Movie/internal/metrics"
	"github.com/neymango11/Movie/internal/metrics/datadog"
	"github.com/neymango11/Movie/internal/metrics/prompush"
	csvparser "github.com/neymango11/Movie/internal/parser/csv"
	"github.com/neymango11/Movie/internal/sample"
	"github.com/neymango11/Movie/internal/transformer"
	"github.com/neymango11/Movie/pkg/records"
)

// Test seams.
var (
	bundledRowsFn  = dataset.Bundled
	readRowsFn     = dataset.ReadEmbeddedFile
	setupMetricsFn = setupMetrics
)

// buildLoader turns cfg into a dataset.Loader. Configuration mistakes are
// returned; unreadable embedded rows are only logged, since the loader falls
// through to the next candidate anyway.
func buildLoader(cfg config.Dashboard, logger *zap.Logger) (*dataset.Loader, error) {
	src, err := buildSource(cfg.Source)
	if err != nil {
		return nil, err
	}

	var parser dataset.Parser
	switch cfg.Parser.Kind {
	case "", "csv":
		opt := csvparser.OptionsFrom(cfg.Parser.Options)
		opt.Logger = logger
		parser = csvparser.NewParser(opt)
	default:
		return nil, fmt.Errorf("unsupported parser.kind=%q", cfg.Parser.Kind)
	}

	chain, err := transformer.Build(cfg.Transform)
	if err != nil {
		return nil, err
	}

	gen := sample.New(nil)
	if cfg.Sample.Seed != 0 {
		gen = sample.NewSeeded(cfg.Sample.Seed)
	}

	return &dataset.Loader{
		Embedded:  embeddedRows(cfg.Embedded, logger),
		Source:    src,
		Parser:    parser,
		Chain:     chain,
		Generator: gen,
		Logger:    logger,
		Job:       cfg.Job,
	}, nil
}

func buildSource(s config.Source) (datasource.Source, error) {
	switch s.Kind {
	case "file":
		return file.NewLocal(s.File.Path), nil
	case "http":
		client := httpds.NewClient(httpds.Config{
			Timeout:            time.Duration(s.HTTP.TimeoutSeconds) * time.Second,
			MaxRetries:         s.HTTP.MaxRetries,
			InsecureSkipVerify: s.HTTP.InsecureSkipVerify,
			Headers:            http.Header{"Accept": {"text/csv, */*"}},
		})
		return httpds.NewSource(client, s.HTTP.URL), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported source.kind=%q", s.Kind)
	}
}

func embeddedRows(e config.Embedded, logger *zap.Logger) []records.Record {
	if e.Disabled {
		return nil
	}
	var (
		rows []records.Record
		err  error
	)
	if e.Path != "" {
		rows, err = readRowsFn(e.Path)
	} else {
		rows, err = bundledRowsFn()
	}
	if err != nil {
		logger.Warn("embedded rows unavailable", zap.String("path", e.Path), zap.Error(err))
		return nil
	}
	return rows
}

// setupMetrics installs the metrics backend. The backend name comes from the
// flag, then env METRICS_BACKEND, then the config file; endpoints from the
// config, then env. The returned func flushes the backend.
func setupMetrics(cfg config.Dashboard, flagBackend string, logger *zap.Logger) func() {
	name := flagBackend
	if name == "" {
		name = os.Getenv("METRICS_BACKEND")
	}
	if name == "" {
		name = cfg.Metrics.Backend
	}

	var (
		b   metrics.Backend
		err error
	)
	switch name {
	case "pushgateway":
		url := firstNonEmpty(cfg.Metrics.PushgatewayURL, os.Getenv("PUSHGATEWAY_URL"), "http://localhost:9091")
		b, err = prompush.NewBackend(cfg.Job, url)
		logger.Debug("metrics backend", zap.String("backend", name), zap.String("url", url))
	case "datadog":
		addr := firstNonEmpty(cfg.Metrics.DatadogAddr, os.Getenv("DD_AGENT_ADDR"), "127.0.0.1:8125")
		b, err = datadog.NewBackend(datadog.Config{
			Addr:       addr,
			Namespace:  "moviedash.",
			GlobalTags: []string{"job:" + cfg.Job},
		})
		logger.Debug("metrics backend", zap.String("backend", name), zap.String("addr", addr))
	case "", "none":
		logger.Debug("metrics disabled")
		return func() {}
	default:
		logger.Warn("unknown metrics backend; metrics disabled", zap.String("backend", name))
		return func() {}
	}
	if err != nil {
		logger.Warn("metrics backend init failed; using nop", zap.String("backend", name), zap.Error(err))
		return func() {}
	}

	metrics.SetBackend(b)
	return func() {
		if err := metrics.Flush(); err != nil {
			logger.Warn("metrics flush failed", zap.Error(err))
		}
	}
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
