package transformer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neymango11/Movie/internal/config"
	"github.com/neymango11/Movie/pkg/records"
)

func TestBuildAndApply(t *testing.T) {
	t.Parallel()

	chain, err := Build([]config.Transform{
		{Kind: "normalize", Options: config.Options{}},
		{Kind: "dedup", Options: config.Options{"policy": "keep-last"}},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(chain) != 2 {
		t.Fatalf("len(chain) = %d, want 2", len(chain))
	}

	in := []records.Record{
		{"Name": " Heat ", "BoxOffice": "10"},
		{"Name": "Heat", "BoxOffice": "20"},
	}
	got := chain.Apply(in)
	want := []records.Record{{"Name": "Heat", "BoxOffice": "20"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Apply (-want +got):\n%s", diff)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []config.Transform
		want string
	}{
		{"unknown_kind", []config.Transform{{Kind: "coerce"}}, `unknown kind "coerce"`},
		{"bad_policy", []config.Transform{{Kind: "dedup", Options: config.Options{"policy": "most-complete"}}}, "unknown dedup policy"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Build(tt.in)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestEmptyChainIsIdentity(t *testing.T) {
	t.Parallel()

	in := []records.Record{{"Name": "x"}}
	if got := (Chain{}).Apply(in); len(got) != 1 || got[0]["Name"] != "x" {
		t.Fatalf("got %v", got)
	}
}
