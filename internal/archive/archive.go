// Package archive reads the FAA Releasable Aircraft zip archive.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMemberNotFound is returned (wrapped in an *Error) when a member is not in
// the archive.
var ErrMemberNotFound = errors.New("member not found")

// Error describes a failure to read the archive or one of its members.
type Error struct {
	Member string // empty for archive-level failures
	Err    error
}

func (e *Error) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("archive: %v", e.Err)
	}
	return fmt.Sprintf("archive member %s: %v", e.Member, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Archive is an in-memory zip archive. Member contents are decompressed on
// every Open and never cached.
type Archive struct {
	data []byte
	zr   *zip.Reader
}

// Load reads the archive at path into memory.
func Load(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Err: err}
	}
	return FromBytes(data)
}

// FromBytes wraps an archive blob, validating its zip directory.
func FromBytes(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Err: err}
	}
	return &Archive{data: data, zr: zr}, nil
}

// Members returns the member names in directory order.
func (a *Archive) Members() []string {
	names := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		names = append(names, f.Name)
	}
	return names
}

// Open returns the named member as UTF-8 text with any leading UTF-8
// byte-order mark removed. Reading bytes that are not valid UTF-8 fails with
// an *Error. The caller must close it.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	for _, f := range a.zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &Error{Member: name, Err: err}
		}
		return &memberReader{
			Reader: transform.NewReader(rc, newMemberDecoder()),
			member: name,
			closer: rc,
		}, nil
	}
	return nil, &Error{Member: name, Err: ErrMemberNotFound}
}

// Size returns the size of the archive in bytes.
func (a *Archive) Size() int {
	return len(a.data)
}

// Save writes the raw archive bytes to path, replacing any existing file.
func (a *Archive) Save(path string) error {
	if err := os.WriteFile(path, a.data, 0o644); err != nil {
		return fmt.Errorf("save archive: %w", err)
	}
	return nil
}

// newMemberDecoder accepts strict UTF-8 only and drops a leading UTF-8 BOM.
// Invalid bytes fail with encoding.ErrInvalidUTF8.
func newMemberDecoder() transform.Transformer {
	return transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
}

// memberReader tags read errors with the member name so a corrupt entry
// surfaces as an *Error.
type memberReader struct {
	io.Reader
	member string
	closer io.Closer
}

func (m *memberReader) Read(p []byte) (int, error) {
	n, err := m.Reader.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, &Error{Member: m.member, Err: err}
	}
	return n, err
}

func (m *memberReader) Close() error {
	return m.closer.Close()
}
