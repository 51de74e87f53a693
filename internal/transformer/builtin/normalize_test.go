package builtin

import (
	"reflect"
	"testing"

	"github.com/neymango11/Movie/pkg/records"
)

const nbsp = "\u00a0"

/*
TestNormalizeApply_TableDriven verifies Normalize.Apply:

  - NBSP and other Unicode space separators become ASCII spaces.
  - Leading and trailing whitespace is trimmed.
  - Decomposed accents are composed (NFC).
  - Strings that end up empty become nil.
  - Non-string values are left alone.
*/
func TestNormalizeApply_TableDriven(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []records.Record
		want []records.Record
	}{
		{
			name: "non_strings_untouched",
			in:   []records.Record{{"Year": 1994, "BoxOffice": 12.5, "Runtime": nil}},
			want: []records.Record{{"Year": 1994, "BoxOffice": 12.5, "Runtime": nil}},
		},
		{
			name: "trim",
			in:   []records.Record{{"Name": "  Heat\t", "Genre": "\nCrime "}},
			want: []records.Record{{"Name": "Heat", "Genre": "Crime"}},
		},
		{
			name: "nbsp_folded",
			in:   []records.Record{{"Name": nbsp + "Toy" + nbsp + "Story" + nbsp}},
			want: []records.Record{{"Name": "Toy Story"}},
		},
		{
			name: "nfc",
			in:   []records.Record{{"Name": "Ame\u0301lie"}},
			want: []records.Record{{"Name": "Am\u00e9lie"}},
		},
		{
			name: "blank_becomes_nil",
			in:   []records.Record{{"Director": " " + nbsp + " "}},
			want: []records.Record{{"Director": nil}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize{}.Apply(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizeFoldKeys(t *testing.T) {
	t.Parallel()

	in := []records.Record{{" Name ": "Heat", "Year" + nbsp: "1995"}}
	got := Normalize{FoldKeys: true}.Apply(in)
	want := []records.Record{{"Name": "Heat", "Year": "1995"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	if got := CleanText(" PG-13 "); got != "PG-13" {
		t.Fatalf("CleanText = %q", got)
	}
}
