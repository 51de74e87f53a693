// Package records defines the untyped row shape shared by parsers and
// transformers before rows are turned into typed domain values.
package records

// Record is a single parsed row keyed by column name. Values are usually
// strings or nil as produced by the parsers; JSON-sourced rows may also carry
// float64, bool or json.Number values.
type Record map[string]any

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
