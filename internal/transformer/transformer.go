// Package transformer runs ordered cleanups over raw records before they are
// normalized into movies.
package transformer

import (
	"fmt"

	"github.com/neymango11/Movie/internal/config"
	"github.com/neymango11/Movie/internal/transformer/builtin"
	"github.com/neymango11/Movie/pkg/records"
)

type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}

// Build turns the configured transform list into a Chain.
func Build(ts []config.Transform) (Chain, error) {
	chain := make(Chain, 0, len(ts))
	for i, t := range ts {
		switch t.Kind {
		case "normalize":
			chain = append(chain, builtin.Normalize{FoldKeys: t.Options.Bool("fold_keys", false)})
		case "dedup":
			d := builtin.DeDup{
				Keys:   t.Options.Strings("keys"),
				Policy: t.Options.String("policy", builtin.KeepFirst),
			}
			if d.Policy != builtin.KeepFirst && d.Policy != builtin.KeepLast {
				return nil, fmt.Errorf("transformer: transform[%d]: unknown dedup policy %q", i, d.Policy)
			}
			chain = append(chain, d)
		default:
			return nil, fmt.Errorf("transformer: transform[%d]: unknown kind %q", i, t.Kind)
		}
	}
	return chain, nil
}
