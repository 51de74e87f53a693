// Package datasource defines where the external movie table comes from. The
// dashboard opens its source exactly once per load.
package datasource

import (
	"context"
	"io"
)

// Source opens the raw bytes of a tabular resource.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Describer is implemented by sources that can name themselves in log lines.
type Describer interface {
	Describe() string
}

// Describe returns a human-readable name for s.
func Describe(s Source) string {
	if d, ok := s.(Describer); ok {
		return d.Describe()
	}
	return "source"
}
