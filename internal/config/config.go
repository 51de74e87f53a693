// Package config defines the JSON-serializable configuration for the movie
// dashboard. Files are decoded with the standard library; parser and
// transform settings travel in free-form Options bags with typed accessors.
//
// Example (trimmed):
//
//	{
//	  "job":      "moviedash",
//	  "embedded": { "path": "data/movies.json" },
//	  "source":   { "kind": "http", "http": { "url": "https://example.org/movie_data.csv" } },
//	  "parser":   { "kind": "csv", "options": { "comma": ",", "trim_space": true } },
//	  "transform":[ { "kind": "normalize" } ],
//	  "sample":   { "seed": 42 },
//	  "metrics":  { "backend": "none" }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DefaultCSVPath is where the dashboard looks for its CSV when nothing else
// is configured.
const DefaultCSVPath = "data/movie_data.csv"

// Dashboard is the top-level configuration document.
type Dashboard struct {
	// Job labels metrics and log lines.
	Job string `json:"job"`

	// Embedded points at a JSON array of raw rows that takes priority over
	// Source. When Path is empty the rows bundled into the binary are used.
	Embedded Embedded `json:"embedded"`

	// Source is the external tabular resource fetched once at startup.
	Source Source `json:"source"`

	// Parser configures how Source bytes become rows.
	Parser Parser `json:"parser"`

	// Transform lists the ordered raw-row cleanups applied before
	// normalization.
	Transform []Transform `json:"transform"`

	// Sample configures the synthetic fallback.
	Sample Sample `json:"sample"`

	Metrics Metrics `json:"metrics"`
}

// Embedded configures the bundled dataset.
type Embedded struct {
	Path     string `json:"path"`
	Disabled bool   `json:"disabled"`
}

// Source identifies the external resource. Kind is "file", "http" or "none".
type Source struct {
	Kind string     `json:"kind"`
	File SourceFile `json:"file"`
	HTTP SourceHTTP `json:"http"`
}

// SourceFile holds options for the "file" source kind.
type SourceFile struct {
	Path string `json:"path"`
}

// SourceHTTP holds options for the "http" source kind.
type SourceHTTP struct {
	URL                string `json:"url"`
	TimeoutSeconds     int    `json:"timeout_seconds"`
	MaxRetries         int    `json:"max_retries"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify"`
}

// Parser selects the row parser. Only "csv" is implemented.
type Parser struct {
	Kind string `json:"kind"`

	// Options for CSV: comma (string), trim_space (bool), header_map (object).
	Options Options `json:"options"`
}

// Transform is a single raw-row cleanup step.
type Transform struct {
	Kind    string  `json:"kind"`
	Options Options `json:"options"`
}

// Sample configures the synthetic data generator. Seed 0 picks a random seed.
type Sample struct {
	Seed uint64 `json:"seed"`
}

// Metrics selects the metrics backend: "none", "pushgateway" or "datadog".
type Metrics struct {
	Backend        string `json:"backend"`
	PushgatewayURL string `json:"pushgateway_url"`
	DatadogAddr    string `json:"datadog_addr"`
}

// Default returns the configuration used when no file is supplied: bundled
// rows first, then the local CSV, then synthetic data.
func Default() Dashboard {
	return Dashboard{
		Job:    "moviedash",
		Source: Source{Kind: "file", File: SourceFile{Path: DefaultCSVPath}},
		Parser: Parser{Kind: "csv", Options: Options{
			"trim_space": true,
		}},
		Transform: []Transform{{Kind: "normalize", Options: Options{}}},
		Metrics:   Metrics{Backend: "none"},
	}
}

// Decode reads a Dashboard from r, starting from Default so that omitted
// sections keep their defaults.
func Decode(r io.Reader) (Dashboard, error) {
	d := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return Dashboard{}, fmt.Errorf("config: decode: %w", err)
	}
	return d, nil
}

// Load opens path and decodes it. An empty path returns Default.
func Load(path string) (Dashboard, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Dashboard{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Options is a small helper to fetch typed values from free-form JSON maps.
// It performs minimal coercion and returns the provided default when a key is
// absent or of an unexpected type.
type Options map[string]any

// String returns the string value for key or def.
func (o Options) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Bool returns the bool value for key or def.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Rune returns the first rune of a string value for key, or def.
func (o Options) Rune(key string, def rune) rune {
	if v, ok := o[key]; ok {
		if s, ok := v.(string); ok && len(s) > 0 {
			return []rune(s)[0]
		}
	}
	return def
}

// Strings returns the string elements of an array at key, or nil.
func (o Options) Strings(key string) []string {
	var res []string
	switch l := o[key].(type) {
	case []any:
		for _, v := range l {
			if s, ok := v.(string); ok {
				res = append(res, s)
			}
		}
	case []string:
		res = append(res, l...)
	}
	return res
}

// StringMap returns the string-valued entries of an object at key. Returns an
// empty map when the key is missing or not an object.
func (o Options) StringMap(key string) map[string]string {
	res := map[string]string{}
	if v, ok := o[key]; ok {
		switch m := v.(type) {
		case map[string]any:
			for k, vv := range m {
				if s, ok := vv.(string); ok {
					res[k] = s
				}
			}
		case map[string]string:
			for k, s := range m {
				res[k] = s
			}
		}
	}
	return res
}

// UnmarshalJSON makes a missing or null "options" object decode to a non-nil,
// empty Options map.
func (o *Options) UnmarshalJSON(b []byte) error {
	var tmp map[string]any
	if len(b) == 0 || string(b) == "null" {
		*o = Options{}
		return nil
	}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*o = Options(tmp)
	return nil
}
