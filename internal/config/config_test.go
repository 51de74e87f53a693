package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Decoding
// -----------------------------------------------------------------------------

func TestDecode_FullDocument(t *testing.T) {
	t.Parallel()

	const js = `{
	  "job": "films",
	  "embedded": { "path": "data/movies.json" },
	  "source": { "kind": "http", "http": { "url": "https://example.org/m.csv", "timeout_seconds": 5, "max_retries": 2 } },
	  "parser": { "kind": "csv", "options": { "comma": ";", "trim_space": true, "header_map": { "Titel": "Name" } } },
	  "transform": [ { "kind": "normalize", "options": {} } ],
	  "sample": { "seed": 42 },
	  "metrics": { "backend": "pushgateway", "pushgateway_url": "http://pg:9091" }
	}`

	d, err := Decode(strings.NewReader(js))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Job != "films" || d.Embedded.Path != "data/movies.json" {
		t.Fatalf("top-level fields not decoded: %+v", d)
	}
	if d.Source.Kind != "http" || d.Source.HTTP.URL != "https://example.org/m.csv" ||
		d.Source.HTTP.TimeoutSeconds != 5 || d.Source.HTTP.MaxRetries != 2 {
		t.Fatalf("source not decoded: %+v", d.Source)
	}
	if got := d.Parser.Options.Rune("comma", ','); got != ';' {
		t.Fatalf("comma = %q, want ';'", got)
	}
	if hm := d.Parser.Options.StringMap("header_map"); hm["Titel"] != "Name" {
		t.Fatalf("header_map = %v", hm)
	}
	if len(d.Transform) != 1 || d.Transform[0].Options == nil {
		t.Fatalf("transform options should decode to a non-nil map: %+v", d.Transform)
	}
	if d.Sample.Seed != 42 || d.Metrics.PushgatewayURL != "http://pg:9091" {
		t.Fatalf("sample/metrics not decoded: %+v %+v", d.Sample, d.Metrics)
	}
}

func TestDecode_KeepsDefaultsForOmittedSections(t *testing.T) {
	t.Parallel()

	d, err := Decode(strings.NewReader(`{"sample": {"seed": 7}}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	def := Default()
	if d.Job != def.Job || d.Source.File.Path != DefaultCSVPath || d.Parser.Kind != "csv" {
		t.Fatalf("defaults lost: %+v", d)
	}
	if d.Sample.Seed != 7 {
		t.Fatalf("seed = %d, want 7", d.Sample.Seed)
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader(`{"storage": {}}`)); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := Load("")
	if err != nil || d.Job != "moviedash" {
		t.Fatalf("Load(\"\") = %+v, %v", d, err)
	}

	p := filepath.Join(t.TempDir(), "dash.json")
	if err := os.WriteFile(p, []byte(`{"job":"x"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d, err = Load(p)
	if err != nil || d.Job != "x" {
		t.Fatalf("Load(file) = %+v, %v", d, err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil ||
		!strings.Contains(err.Error(), "config: open") {
		t.Fatalf("Load(missing) err = %v", err)
	}
}

// -----------------------------------------------------------------------------
// Options accessors
// -----------------------------------------------------------------------------

func TestOptionsAccessors(t *testing.T) {
	t.Parallel()

	o := Options{
		"s": "x", "b": true, "r": "|",
		"m": map[string]any{"a": "b", "n": 1},
		"l": []any{"Name", 2, "Year"},
	}
	if o.String("s", "d") != "x" || o.String("missing", "d") != "d" || o.String("b", "d") != "d" {
		t.Errorf("String accessor wrong")
	}
	if !o.Bool("b", false) || o.Bool("s", false) {
		t.Errorf("Bool accessor wrong")
	}
	if o.Rune("r", ',') != '|' || o.Rune("missing", ',') != ',' {
		t.Errorf("Rune accessor wrong")
	}
	if m := o.StringMap("m"); len(m) != 1 || m["a"] != "b" {
		t.Errorf("StringMap = %v", m)
	}
	if l := o.Strings("l"); len(l) != 2 || l[0] != "Name" || l[1] != "Year" {
		t.Errorf("Strings = %v", l)
	}
	if o.Strings("missing") != nil {
		t.Errorf("Strings on missing key should be nil")
	}
}

func TestShippedConfigIsValid(t *testing.T) {
	t.Parallel()

	d, err := Load(filepath.Join("..", "..", "configs", "dashboard.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if issues := ValidateDashboard(d); HasErrors(issues) {
		t.Fatalf("shipped config has errors: %v", issues)
	}
	if len(d.Transform) != 2 || d.Transform[1].Kind != "dedup" {
		t.Fatalf("transforms = %+v", d.Transform)
	}
}
