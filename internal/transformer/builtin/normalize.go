// Package builtin contains the raw-record transformers selectable from the
// dashboard config.
package builtin

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/neymango11/Movie/pkg/records"
)

// Normalize cleans string values in place: Unicode spaces (NBSP included)
// become ASCII spaces, the result is trimmed and NFC-composed, and strings
// that end up empty become nil.
type Normalize struct {
	// FoldKeys applies the same trimming to record keys.
	FoldKeys bool
}

func (n Normalize) Apply(in []records.Record) []records.Record {
	for i, r := range in {
		if n.FoldKeys {
			r = foldKeys(r)
			in[i] = r
		}
		for k, v := range r {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if s = CleanText(s); s == "" {
				r[k] = nil
			} else {
				r[k] = s
			}
		}
	}
	return in
}

// CleanText is the string cleanup applied by Normalize.
func CleanText(s string) string {
	s = strings.Map(func(r rune) rune {
		if r != ' ' && unicode.Is(unicode.Zs, r) {
			return ' '
		}
		return r
	}, s)
	return norm.NFC.String(strings.TrimSpace(s))
}

func foldKeys(r records.Record) records.Record {
	out := make(records.Record, len(r))
	for k, v := range r {
		k = CleanText(k)
		if _, dup := out[k]; dup && v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
