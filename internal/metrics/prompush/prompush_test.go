package prompush

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/neymango11/Movie/internal/metrics"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("Counter.Write: %v", err)
	}
	return m.GetCounter().GetValue()
}

func summaryCount(t *testing.T, v *prometheus.SummaryVec, labels ...string) uint64 {
	t.Helper()
	m := &dto.Metric{}
	metric, ok := v.WithLabelValues(labels...).(prometheus.Metric)
	if !ok {
		t.Fatalf("summary does not implement prometheus.Metric")
	}
	if err := metric.Write(m); err != nil {
		t.Fatalf("Summary.Write: %v", err)
	}
	return m.GetSummary().GetSampleCount()
}

func TestNewBackend(t *testing.T) {
	t.Parallel()

	if _, err := NewBackend("x", ""); err == nil {
		t.Fatalf("expected error for empty gateway URL")
	}
	b, err := NewBackend("", "http://pushgateway:9091")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if b.jobName != "moviedash" {
		t.Fatalf("jobName = %q, want moviedash", b.jobName)
	}
}

func TestBackendRecords(t *testing.T) {
	t.Parallel()

	b, err := NewBackend("dash", "http://pushgateway:9091")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}

	b.IncCounter(metrics.StepTotal, 1, metrics.Labels{"step": "load", "status": "success"})
	b.IncCounter(metrics.RecordsTotal, 48, metrics.Labels{"kind": "admitted"})
	b.IncCounter(metrics.RecordsTotal, 2, metrics.Labels{"kind": "admitted"})
	b.IncCounter(metrics.SourceTotal, 1, metrics.Labels{"origin": "external"})
	b.IncCounter("unknown_total", 1, nil)
	b.ObserveHistogram(metrics.StepDurationSeconds, 0.25, metrics.Labels{"step": "load", "status": "success"})
	b.ObserveHistogram("unknown_seconds", 1, nil)

	if v := counterValue(t, b.stepCounter.WithLabelValues("load", "success")); v != 1 {
		t.Fatalf("step counter = %v, want 1", v)
	}
	if v := counterValue(t, b.recordCounter.WithLabelValues("admitted")); v != 50 {
		t.Fatalf("record counter = %v, want 50", v)
	}
	if v := counterValue(t, b.sourceCounter.WithLabelValues("external")); v != 1 {
		t.Fatalf("source counter = %v, want 1", v)
	}
	if n := summaryCount(t, b.stepDuration, "load", "success"); n != 1 {
		t.Fatalf("summary count = %d, want 1", n)
	}
}

func TestFlushPushesToGateway(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		path string
		body string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		path, body = r.URL.Path, string(b)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	b, err := NewBackend("dash", srv.URL)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	b.IncCounter(metrics.SourceTotal, 1, metrics.Labels{"origin": "sample"})
	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if path != "/metrics/job/dash" {
		t.Fatalf("push path = %q", path)
	}
	if !strings.Contains(body, metrics.SourceTotal) {
		t.Fatalf("pushed body does not mention %s", metrics.SourceTotal)
	}
}

func TestFlushError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	b, err := NewBackend("dash", srv.URL)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if err := b.Flush(); err == nil || !strings.Contains(err.Error(), "prompush: push") {
		t.Fatalf("err = %v, want wrapped push error", err)
	}
}
