package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/neymango11/Movie/pkg/records"
)

// bundled holds rows compiled into the binary. The checked-in file is an
// empty array; builds that ship data replace it.
//
//go:embed bundled.json
var bundled []byte

// Bundled decodes the rows compiled into the binary.
func Bundled() ([]records.Record, error) {
	return DecodeEmbedded(bytes.NewReader(bundled))
}

// DecodeEmbedded reads a JSON array of objects. Numbers are kept as
// json.Number so the normalizer sees exactly what was written.
func DecodeEmbedded(r io.Reader) ([]records.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var rows []records.Record
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("dataset: decode embedded rows: %w", err)
	}
	out := rows[:0]
	for _, r := range rows {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// ReadEmbeddedFile decodes a JSON rows file from disk.
func ReadEmbeddedFile(path string) ([]records.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeEmbedded(f)
}
