package dataset

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/neymango11/Movie/internal/datasource"
	"github.com/neymango11/Movie/internal/metrics"
	"github.com/neymango11/Movie/internal/movie"
	csvparser "github.com/neymango11/Movie/internal/parser/csv"
	"github.com/neymango11/Movie/internal/sample"
	"github.com/neymango11/Movie/internal/transformer"
	"github.com/neymango11/Movie/pkg/records"
)

// Parser turns the external resource into raw rows. It reports how many rows
// it skipped; an error means nothing usable was read.
type Parser interface {
	Parse(r io.Reader) ([]records.Record, int, error)
}

// Loader resolves the working dataset. All fields are optional: without
// Embedded rows or a Source the loader goes straight to sample data.
//
// A Loader must not be copied after first use.
type Loader struct {
	// Embedded rows take priority over everything else when non-empty.
	Embedded []records.Record

	// Source is the external table, read with Parser (CSV by default).
	Source datasource.Source
	Parser Parser

	// Chain cleans raw rows before normalization.
	Chain transformer.Chain

	// Generator produces the fallback rows; a randomly seeded one is used
	// when nil.
	Generator *sample.Generator

	Logger *zap.Logger

	// Job labels metrics.
	Job string

	group singleflight.Group

	mu     sync.Mutex
	flight *flight
}

// flight is the context of the shared in-flight load. It is cancelled once
// every caller waiting on it has gone.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Load resolves the working dataset. Concurrent calls share one in-flight
// resolution that keeps running while any caller still waits on it. The only
// error is the caller's own context being done.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	for {
		f := l.join(ctx)
		ch := l.group.DoChan("load", func() (any, error) {
			return l.load(f.ctx)
		})
		select {
		case <-ctx.Done():
			l.leave(f)
			return Dataset{}, ctx.Err()
		case res := <-ch:
			l.leave(f)
			if res.Err == nil {
				return res.Val.(Dataset), nil
			}
			if err := ctx.Err(); err != nil {
				return Dataset{}, err
			}
			if !errors.Is(res.Err, context.Canceled) {
				return Dataset{}, res.Err
			}
			// Joined a resolution abandoned by its callers; start over.
		}
	}
}

func (l *Loader) join(ctx context.Context) *flight {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.flight == nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		l.flight = &flight{ctx: fctx, cancel: cancel}
	}
	l.flight.waiters++
	return l.flight
}

func (l *Loader) leave(f *flight) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if l.flight == f {
		l.flight = nil
	}
}

func (l *Loader) load(ctx context.Context) (Dataset, error) {
	log := l.logger()
	start := time.Now()

	ds, err := l.resolve(ctx)
	metrics.RecordStep(l.Job, "load", err, time.Since(start))
	if err != nil {
		return Dataset{}, err
	}
	ds.Fingerprint = Fingerprint(ds.Movies)

	metrics.RecordRow(l.Job, "raw", int64(ds.Raw))
	metrics.RecordRow(l.Job, "admitted", int64(len(ds.Movies)))
	metrics.RecordRow(l.Job, "dropped", int64(ds.Dropped))
	metrics.RecordSource(l.Job, string(ds.Origin))

	log.Info("dataset loaded",
		zap.String("origin", string(ds.Origin)),
		zap.Int("movies", len(ds.Movies)),
		zap.Int("dropped", ds.Dropped),
		zap.Uint64("fingerprint", ds.Fingerprint),
		zap.Duration("took", time.Since(start)))
	if n := ds.Notice(); n != "" {
		log.Warn(n)
	}
	return ds, nil
}

func (l *Loader) resolve(ctx context.Context) (Dataset, error) {
	log := l.logger()

	if len(l.Embedded) > 0 {
		rows := make([]records.Record, len(l.Embedded))
		for i, r := range l.Embedded {
			rows[i] = r.Clone()
		}
		return l.admit(OriginEmbedded, rows), nil
	}

	if l.Source != nil {
		src := datasource.Describe(l.Source)
		rows, err := l.fetch(ctx)
		if cerr := ctx.Err(); cerr != nil {
			return Dataset{}, cerr
		}
		switch {
		case err != nil:
			log.Warn("external movie table unavailable; falling back",
				zap.String("source", src), zap.Error(err))
		case len(rows) == 0:
			log.Warn("external movie table has no rows; falling back",
				zap.String("source", src))
		default:
			ds := l.admit(OriginExternal, rows)
			if len(ds.Movies) == 0 {
				log.Warn("no external row passed the quality gate",
					zap.String("source", src), zap.Int("rows", ds.Raw))
			}
			return ds, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	gen := l.Generator
	if gen == nil {
		gen = sample.New(nil)
	}
	ms := gen.Generate()
	return Dataset{Movies: ms, Origin: OriginSample, Raw: len(ms)}, nil
}

// fetch opens the source once and parses it.
func (l *Loader) fetch(ctx context.Context) ([]records.Record, error) {
	rc, err := l.Source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	rows, skipped, err := l.parser().Parse(rc)
	if skipped > 0 {
		l.logger().Warn("skipped malformed rows",
			zap.String("source", datasource.Describe(l.Source)),
			zap.Int("skipped", skipped))
	}
	if err != nil && len(rows) == 0 {
		return nil, err
	}
	if err != nil {
		l.logger().Warn("external table truncated", zap.Int("rows", len(rows)), zap.Error(err))
	}
	return rows, nil
}

func (l *Loader) admit(origin Origin, rows []records.Record) Dataset {
	raw := len(rows)
	ms := movie.Admit(movie.NormalizeAll(l.Chain.Apply(rows)))
	return Dataset{Movies: ms, Origin: origin, Raw: raw, Dropped: raw - len(ms)}
}

func (l *Loader) parser() Parser {
	if l.Parser != nil {
		return l.Parser
	}
	return csvparser.NewParser(csvparser.Options{TrimSpace: true, Logger: l.logger()})
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
