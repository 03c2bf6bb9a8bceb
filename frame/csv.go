// SPDX-License-Identifier: MIT

package frame

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

const opReadCSV = "ReadCSV"

// ErrMalformedCSV is returned for ragged rows, a missing header or unparsable values.
var ErrMalformedCSV = errors.New("frame: malformed csv")

// ReadCSV parses a sample×feature table.
//
// Layout:
//
//	sample,gene_1,gene_2
//	S1,0.4,1.2
//	S2,0.1,-0.3
//
// The first header cell labels the ID column and is ignored. Surrounding
// whitespace in cells is trimmed. Validation then follows New.
func ReadCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, frameErrorf(opReadCSV, "header: %v: %w", err, ErrMalformedCSV)
	}
	if len(header) < 2 {
		return nil, frameErrorf(opReadCSV, "header has %d cells: %w", len(header), ErrMalformedCSV)
	}
	features := make([]string, len(header)-1)
	for j, h := range header[1:] {
		features[j] = strings.TrimSpace(h)
	}

	var (
		samples []string
		data    []float64
		line    = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, frameErrorf(opReadCSV, "line %d: %v: %w", line, err, ErrMalformedCSV)
		}
		if len(rec) != len(header) {
			return nil, frameErrorf(opReadCSV, "line %d has %d cells, want %d: %w", line, len(rec), len(header), ErrMalformedCSV)
		}
		samples = append(samples, strings.TrimSpace(rec[0]))
		for j, cell := range rec[1:] {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, frameErrorf(opReadCSV, "line %d feature %q: %v: %w", line, features[j], perr, ErrMalformedCSV)
			}
			data = append(data, v)
		}
	}

	return New(samples, features, data)
}
