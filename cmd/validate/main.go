// Command validate checks a ReleasableDrone.csv against the archive it was
// built from: header, field formats and a row-by-row rebuild through the
// report pipeline.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -database data/ReleasableAircraft.zip \
//	  -report data/ReleasableDrone.csv
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/faa-drone-registry/internal/archive"
	"github.com/couchcryptid/faa-drone-registry/internal/domain"
	"github.com/couchcryptid/faa-drone-registry/internal/observability"
	"github.com/couchcryptid/faa-drone-registry/internal/pipeline"
)

var (
	reportDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reportZip  = regexp.MustCompile(`^\d{9}$`)
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	database := flag.String("database", "", "path to ReleasableAircraft.zip")
	report := flag.String("report", "", "path to ReleasableDrone.csv")
	flag.Parse()

	if *database == "" || *report == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *database, *report); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, databasePath, reportPath string) int {
	fmt.Fprintln(out, "=== Drone Report Validation ===")
	fmt.Fprintln(out)

	header, rows, err := loadReport(reportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load report: %v\n", err)
		return 1
	}

	arch, err := archive.Load(databasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load database: %v\n", err)
		return 1
	}
	rebuilt, err := rebuild(arch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: rebuild report: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateHeader(header),
		validateFormats(rows),
		validateRebuild(rows, rebuilt),
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d report, %d rebuilt\n", len(rows), len(rebuilt))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			if i >= 20 {
				fmt.Fprintf(out, "  ... and %d more\n", len(p.errors)-20)
				break
			}
			fmt.Fprintf(out, "  %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}

func loadReport(path string) ([]string, []domain.DroneRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var rows []domain.DroneRecord
	for {
		var rec domain.DroneRecord
		if err := dec.Decode(&rec); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, nil, fmt.Errorf("decode: %w", err)
		}
		rows = append(rows, rec)
	}
	return dec.Header(), rows, nil
}

// collector is a pipeline.Loader that keeps every row in memory.
type collector struct {
	rows []domain.DroneRecord
}

func (c *collector) Load(rec domain.DroneRecord) error {
	c.rows = append(c.rows, rec)
	return nil
}

func rebuild(arch *archive.Archive) ([]domain.DroneRecord, error) {
	c := &collector{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := pipeline.New(arch, c, logger, observability.NewMetricsForTesting()).Run(context.Background()); err != nil {
		return nil, err
	}
	return c.rows, nil
}

func validateHeader(header []string) *phase {
	p := &phase{name: "Phase 1: Report Header"}
	if !slices.Equal(header, domain.ReportHeader) {
		p.errorf("header mismatch:\n%s", cmp.Diff(domain.ReportHeader, header))
	}
	return p
}

func validateFormats(rows []domain.DroneRecord) *phase {
	p := &phase{name: "Phase 2: Field Formats"}
	for i := range rows {
		r := &rows[i]
		if r.NNumber == "" {
			p.errorf("row %d: empty n_number", i+1)
		}
		if r.Status == "" {
			p.errorf("row %d (%s): empty status", i+1, r.NNumber)
		}
		if reportZip.MatchString(r.ZipCode) {
			p.errorf("row %d (%s): unhyphenated ZIP+4 %q", i+1, r.NNumber, r.ZipCode)
		}
		dates := map[string]string{
			"cert_issue_date":    r.CertIssueDate,
			"airworthiness_date": r.AirworthinessDate,
			"last_action_date":   r.LastActionDate,
			"cancel_date":        r.CancelDate,
		}
		for _, col := range slices.Sorted(maps.Keys(dates)) {
			if v := dates[col]; v != "" && !reportDate.MatchString(v) {
				p.errorf("row %d (%s): %s %q is not YYYY-MM-DD", i+1, r.NNumber, col, v)
			}
		}
	}
	return p
}

func validateRebuild(rows, rebuilt []domain.DroneRecord) *phase {
	p := &phase{name: "Phase 3: Rebuild From Database"}
	if len(rows) != len(rebuilt) {
		p.errorf("row count: report has %d, database yields %d", len(rows), len(rebuilt))
	}
	for i := range min(len(rows), len(rebuilt)) {
		if diff := cmp.Diff(rebuilt[i], rows[i]); diff != "" {
			p.errorf("row %d (%s) differs (-rebuilt +report):\n%s", i+1, rebuilt[i].NNumber, diff)
		}
	}
	return p
}
