package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
)

// Decoder binds rows onto a struct whose csv tags name tidied columns.
// Every tagged column must be present in the header.
type Decoder[T any] struct {
	rows *Reader
	dec  *csvutil.Decoder
}

// NewDecoder reads the header from rows and prepares to decode into T.
func NewDecoder[T any](rows *Reader) (*Decoder[T], error) {
	dec, err := csvutil.NewDecoder(rows)
	if err != nil {
		return nil, err
	}
	dec.DisallowMissingColumns = true
	return &Decoder[T]{rows: rows, dec: dec}, nil
}

// Next decodes the next well-formed row. It returns io.EOF after the last one.
func (d *Decoder[T]) Next() (T, error) {
	var v T
	if err := d.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, io.EOF
		}
		return v, fmt.Errorf("line %d: %w", d.rows.Line(), err)
	}
	return v, nil
}

// Rows returns the underlying row reader.
func (d *Decoder[T]) Rows() *Reader {
	return d.rows
}
