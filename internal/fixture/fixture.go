// Package fixture builds small FAA archives in memory for tests and for
// cmd/genmock.
package fixture

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/couchcryptid/faa-drone-registry/internal/domain"
	"github.com/couchcryptid/faa-drone-registry/internal/table"
)

// Raw header lines as published by the FAA, trailing comma included.
const (
	ModelReferenceHeader = "CODE,MFR,MODEL,TYPE-ACFT,TYPE-ENG,AC-CAT,BUILD-CERT-IND,NO-ENG,NO-SEATS,AC-WEIGHT,SPEED,TC-DATA-SHEET,TC-DATA-HOLDER,"
	ActiveHeader         = "N-NUMBER,SERIAL NUMBER,MFR MDL CODE,ENG MFR MDL,YEAR MFR,TYPE REGISTRANT,NAME,STREET,STREET2,CITY,STATE,ZIP CODE,REGION,COUNTY,COUNTRY,LAST ACTION DATE,CERT ISSUE DATE,CERTIFICATION,TYPE AIRCRAFT,TYPE ENGINE,STATUS CODE,MODE S CODE,FRACT OWNER,AIR WORTH DATE,OTHER NAMES(1),OTHER NAMES(2),OTHER NAMES(3),OTHER NAMES(4),OTHER NAMES(5),EXPIRATION DATE,UNIQUE ID,KIT MFR, KIT MODEL,MODE S CODE HEX,"
	DeregisteredHeader   = "N-NUMBER,SERIAL-NUMBER,MFR-MDL-CODE,STATUS-CODE,NAME,STREET-MAIL,STREET2-MAIL,CITY-MAIL,STATE-ABBREV-MAIL,ZIP-CODE-MAIL,ENG-MFR-MDL,YEAR-MFR,CERTIFICATION,REGION,COUNTY-MAIL,COUNTRY-MAIL,AIR-WORTH-DATE,CANCEL-DATE,MODE-S-CODE,INDICATOR-GROUP,EXP-COUNTRY,LAST-ACT-DATE,CERT-ISSUE-DATE,STREET-PHYSICAL,STREET2-PHYSICAL,CITY-PHYSICAL,STATE-ABBREV-PHYSICAL,ZIP-CODE-PHYSICAL,COUNTY-PHYSICAL,COUNTRY-PHYSICAL,OTHER-NAMES(1),OTHER-NAMES(2),OTHER-NAMES(3),OTHER-NAMES(4),OTHER-NAMES(5),KIT MFR,KIT MODEL,MODE S CODE HEX,"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table accumulates the text of one archive member.
type Table struct {
	header  string
	columns map[string]int
	width   int
	lines   []string
	bom     bool
}

// NewTable starts a table with a raw FAA header line.
func NewTable(header string) *Table {
	raw := strings.Split(header, ",")
	cols := raw[:len(raw)-1]
	t := &Table{header: header, columns: make(map[string]int, len(cols)), width: len(cols)}
	for i, c := range cols {
		t.columns[table.TidyHeader(c)] = i
	}
	return t
}

// ModelReference returns an empty ACFTREF.txt table.
func ModelReference() *Table { return NewTable(ModelReferenceHeader) }

// Active returns an empty MASTER.txt table.
func Active() *Table { return NewTable(ActiveHeader) }

// Deregistered returns an empty DEREG.txt table.
func Deregistered() *Table { return NewTable(DeregisteredHeader) }

// WithBOM prefixes the member with a UTF-8 byte-order mark.
func (t *Table) WithBOM() *Table {
	t.bom = true
	return t
}

// Add appends a well-formed row. Values are keyed by tidied column name and
// written verbatim; unset columns are empty. Unknown keys panic.
func (t *Table) Add(values map[string]string) *Table {
	fields := make([]string, t.width)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		i, ok := t.columns[k]
		if !ok {
			panic(fmt.Sprintf("fixture: unknown column %q", k))
		}
		fields[i] = values[k]
	}
	t.lines = append(t.lines, strings.Join(fields, ",")+",")
	return t
}

// AddRaw appends a line exactly as given, e.g. a malformed row.
func (t *Table) AddRaw(line string) *Table {
	t.lines = append(t.lines, line)
	return t
}

// Bytes renders the member with CRLF line endings.
func (t *Table) Bytes() []byte {
	var buf bytes.Buffer
	if t.bom {
		buf.Write(utf8BOM)
	}
	buf.WriteString(t.header)
	buf.WriteString("\r\n")
	for _, l := range t.lines {
		buf.WriteString(l)
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}

// Zip packs members into a zip archive, in name order.
func Zip(members map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(members))
	for n := range members {
		names = append(names, n)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, n := range names {
		w, err := zw.Create(n)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", n, err)
		}
		if _, err := w.Write(members[n]); err != nil {
			return nil, fmt.Errorf("write %s: %w", n, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive packs the three tables under their FAA member names.
func Archive(ref, active, dereg *Table) ([]byte, error) {
	return Zip(map[string][]byte{
		domain.ModelReferenceMember: ref.Bytes(),
		domain.ActiveMember:         active.Bytes(),
		domain.DeregisteredMember:   dereg.Bytes(),
	})
}
