package builtin

import (
	"fmt"
	"strings"

	"github.com/neymango11/Movie/pkg/records"
)

const (
	KeepFirst = "keep-first"
	KeepLast  = "keep-last"
)

// DefaultDedupKeys identifies a movie by its name under either casing.
var DefaultDedupKeys = []string{"Name|name"}

// DeDup collapses records sharing a key. Each entry of Keys is one key part;
// a part may list alternatives separated by "|" and the first present,
// non-nil one is used. Records missing a part pass through untouched.
//
// Output keeps the input order of the surviving records.
type DeDup struct {
	Keys   []string
	Policy string
}

func (d DeDup) Apply(in []records.Record) []records.Record {
	if len(in) == 0 {
		return in
	}
	keys := d.Keys
	if len(keys) == 0 {
		keys = DefaultDedupKeys
	}

	winner := make(map[string]int, len(in))
	keyed := make([]string, len(in))
	for i, r := range in {
		k, ok := keyOf(r, keys)
		if !ok {
			continue
		}
		keyed[i] = k
		if _, seen := winner[k]; !seen || d.Policy == KeepLast {
			winner[k] = i
		}
	}

	out := make([]records.Record, 0, len(winner))
	for i, r := range in {
		if keyed[i] == "" || winner[keyed[i]] == i {
			out = append(out, r)
		}
	}
	return out
}

func keyOf(r records.Record, parts []string) (string, bool) {
	var b strings.Builder
	for _, part := range parts {
		v, ok := firstPresent(r, strings.Split(part, "|"))
		if !ok {
			return "", false
		}
		b.WriteByte('\x1f')
		if s, isStr := v.(string); isStr {
			b.WriteString(s)
		} else {
			b.WriteString(fmt.Sprint(v))
		}
	}
	return b.String(), true
}

func firstPresent(r records.Record, names []string) (any, bool) {
	for _, n := range names {
		if v, ok := r[n]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
