// Command genmock writes a small synthetic ReleasableAircraft.zip for trying
// dronereg offline, and optionally the report the pipeline produces from it.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -zip-out data/mock/ReleasableAircraft.zip \
//	  -csv-out data/mock/ReleasableDrone.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/couchcryptid/faa-drone-registry/internal/adapter/csvreport"
	"github.com/couchcryptid/faa-drone-registry/internal/archive"
	"github.com/couchcryptid/faa-drone-registry/internal/fixture"
	"github.com/couchcryptid/faa-drone-registry/internal/observability"
	"github.com/couchcryptid/faa-drone-registry/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	zipOut := flag.String("zip-out", "", "output path for the synthetic archive")
	csvOut := flag.String("csv-out", "", "optional output path for the expected drone report")
	flag.Parse()

	if *zipOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -zip-out")
	}

	data, err := fixture.Sample()
	if err != nil {
		return fmt.Errorf("building sample archive: %w", err)
	}
	arch, err := archive.FromBytes(data)
	if err != nil {
		return err
	}
	if err := arch.Save(*zipOut); err != nil {
		return err
	}
	log.Printf("wrote archive: %s (%d bytes, members %v)", *zipOut, arch.Size(), arch.Members())

	if *csvOut == "" {
		return nil
	}
	stats, err := writeReport(arch, *csvOut)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Printf("wrote report: %s (%d records)", *csvOut, stats.Written())
	printStats(stats)
	return nil
}

func writeReport(arch *archive.Archive, path string) (pipeline.Stats, error) {
	w, err := csvreport.Create(path)
	if err != nil {
		return pipeline.Stats{}, err
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stats, err := pipeline.New(arch, w, logger, observability.NewMetricsForTesting()).Run(context.Background())
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return stats, err
}

func printStats(s pipeline.Stats) {
	log.Printf("drone models: %d", s.ModelReferences)
	for _, t := range []pipeline.TableStats{s.Active, s.Deregistered} {
		log.Printf("  %-12s read=%d written=%d not_drone=%d no_model=%d malformed=%d",
			t.Table, t.Read, t.Written, t.NotDrone, t.NoModel, t.Malformed)
	}
}
