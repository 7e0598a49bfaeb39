// Package table binds the rows of FAA text members to their headers.
//
// Every FAA line ends with a delimiter, so the last column of the header and
// of each row is an artifact and is dropped. Remaining fields are trimmed.
// Rows whose field count then differs from the header are skipped.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned when a member has no header line.
var ErrNoHeader = errors.New("missing header line")

var headerReplacer = strings.NewReplacer("(", "", ")", "", "-", "_", " ", "_")

// TidyHeader turns a raw FAA column name into an identifier:
// "TYPE-REGISTRANT (Sub)" becomes "type_registrant_sub".
func TidyHeader(raw string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// Reader yields the tidied header followed by well-formed data rows.
type Reader struct {
	r       *csv.Reader
	header  []string
	line    int
	skipped int

	// OnSkip, if set, is called for every dropped row with its line number
	// and field count.
	OnSkip func(line, fields int)
}

// NewReader returns a Reader over FAA member text.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{r: cr}
}

// Read returns the tidied header on the first call and one data row per call
// after that, or io.EOF when the member is exhausted.
func (r *Reader) Read() ([]string, error) {
	if r.header == nil {
		rec, err := r.r.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		r.line, _ = r.r.FieldPos(0)
		cols := dropLast(rec)
		r.header = make([]string, len(cols))
		for i, c := range cols {
			r.header[i] = TidyHeader(c)
		}
		return append([]string(nil), r.header...), nil
	}

	for {
		rec, err := r.r.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		r.line, _ = r.r.FieldPos(0)

		fields := dropLast(rec)
		if len(fields) != len(r.header) {
			r.skipped++
			if r.OnSkip != nil {
				r.OnSkip(r.line, len(fields))
			}
			continue
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields, nil
	}
}

// Header returns the tidied header, or nil before the first Read.
func (r *Reader) Header() []string {
	return r.header
}

// Line returns the line number of the last record read.
func (r *Reader) Line() int {
	return r.line
}

// Skipped returns the number of rows dropped for a field count mismatch.
func (r *Reader) Skipped() int {
	return r.skipped
}

func dropLast(rec []string) []string {
	if len(rec) == 0 {
		return rec
	}
	return rec[:len(rec)-1]
}
