// Package csvreport writes the drone report as CSV.
package csvreport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/faa-drone-registry/internal/domain"
)

// WriteError reports a failure to create or write the report file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer encodes drone records to a CSV file.
// It implements pipeline.Loader.
type Writer struct {
	path string
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	enc  *csvutil.Encoder
}

// Create creates or truncates path and writes the report header. Lines end
// with CRLF.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}

	buf := bufio.NewWriter(f)
	cw := csv.NewWriter(buf)
	cw.UseCRLF = true
	w := &Writer{
		path: path,
		file: f,
		buf:  buf,
		csv:  cw,
		enc:  csvutil.NewEncoder(cw),
	}

	if err := w.enc.EncodeHeader(domain.DroneRecord{}); err != nil {
		f.Close()
		return nil, &WriteError{Path: path, Err: err}
	}
	return w, nil
}

// Load encodes one record.
func (w *Writer) Load(record domain.DroneRecord) error {
	if err := w.enc.Encode(record); err != nil {
		return &WriteError{Path: w.path, Err: err}
	}
	return nil
}

// Path returns the report location.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return &WriteError{Path: w.path, Err: err}
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return &WriteError{Path: w.path, Err: err}
	}
	if err := w.file.Close(); err != nil {
		return &WriteError{Path: w.path, Err: err}
	}
	return nil
}
