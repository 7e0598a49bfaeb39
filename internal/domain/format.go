package domain

import (
	"fmt"
	"time"
)

const (
	faaDateLayout    = "20060102"
	reportDateLayout = "2006-01-02"
)

// DateFormatError reports a non-empty FAA date that is not YYYYMMDD.
type DateFormatError struct {
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid FAA date %q: %v", e.Value, e.Err)
}

func (e *DateFormatError) Unwrap() error { return e.Err }

// FormatDate converts a YYYYMMDD date to YYYY-MM-DD. An empty value formats
// as "".
func FormatDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if len(s) != len(faaDateLayout) {
		return "", &DateFormatError{Value: s, Err: fmt.Errorf("want %d digits, got %d", len(faaDateLayout), len(s))}
	}
	t, err := time.Parse(faaDateLayout, s)
	if err != nil {
		return "", &DateFormatError{Value: s, Err: err}
	}
	return t.Format(reportDateLayout), nil
}

// FormatZip hyphenates nine-digit ZIP codes ("123456789" -> "12345-6789").
// Anything else is returned unchanged.
func FormatZip(zip string) string {
	if len(zip) != 9 {
		return zip
	}
	return zip[:5] + "-" + zip[5:]
}
