package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/couchcryptid/faa-drone-registry/internal/domain"
	"github.com/couchcryptid/faa-drone-registry/internal/observability"
	"github.com/couchcryptid/faa-drone-registry/internal/table"
)

// contextCheckInterval is how many rows are read between cancellation checks.
const contextCheckInterval = 1000

// TableSource opens archive members by name.
type TableSource interface {
	Open(name string) (io.ReadCloser, error)
}

// Loader writes report rows in the order it receives them.
type Loader interface {
	Load(record domain.DroneRecord) error
}

// TableStats counts what happened to the rows of one member.
type TableStats struct {
	Table     string
	Read      int // well-formed rows
	Malformed int
	NotDrone  int
	NoModel   int
	Written   int
}

// Stats summarizes a report run.
type Stats struct {
	ModelReferences int
	Active          TableStats
	Deregistered    TableStats
	Duration        time.Duration
}

// Written returns the total number of report rows.
func (s Stats) Written() int {
	return s.Active.Written + s.Deregistered.Written
}

// Pipeline joins the registration tables against the drone model index.
type Pipeline struct {
	source  TableSource
	loader  Loader
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline reading from src and writing to l.
func New(src TableSource, l Loader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:  src,
		loader:  l,
		logger:  logger,
		metrics: metrics,
	}
}

// Run builds the model index, then streams MASTER.txt and DEREG.txt into the
// loader, in that order. Any returned error is fatal for the run.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	start := clock.Now()
	var stats Stats

	idx, err := p.buildModelIndex(ctx)
	if err != nil {
		return stats, err
	}
	stats.ModelReferences = len(idx)

	stats.Active, err = joinTable(ctx, p, domain.ActiveMember, "active",
		func(reg domain.ActiveRegistration) (domain.DroneRecord, string, error) {
			return JoinActive(idx, reg)
		})
	if err != nil {
		return stats, err
	}

	stats.Deregistered, err = joinTable(ctx, p, domain.DeregisteredMember, "deregistered",
		func(reg domain.DeregisteredRegistration) (domain.DroneRecord, string, error) {
			return JoinDeregistered(idx, reg)
		})
	if err != nil {
		return stats, err
	}

	stats.Duration = clock.Since(start)
	p.metrics.RunDuration.Set(stats.Duration.Seconds())
	p.logger.Info("drone report complete",
		"records", stats.Written(),
		"model_references", stats.ModelReferences,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (p *Pipeline) buildModelIndex(ctx context.Context) (ModelIndex, error) {
	idx := make(ModelIndex)
	stats := TableStats{Table: domain.ModelReferenceMember}

	malformed, err := eachRow(ctx, p, domain.ModelReferenceMember, func(ref domain.ModelReference) error {
		stats.Read++
		if !idx.Add(ref) {
			stats.NotDrone++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	stats.Malformed = malformed

	p.metrics.ModelReferences.Set(float64(len(idx)))
	p.recordTable(stats)
	p.logger.Info("model references loaded", "table", stats.Table, "rows", stats.Read, "drone_models", len(idx), "malformed", stats.Malformed)
	return idx, nil
}

// joinTable streams one registration member through join, loading every row
// it resolves.
func joinTable[T any](ctx context.Context, p *Pipeline, member, source string, join func(T) (domain.DroneRecord, string, error)) (TableStats, error) {
	stats := TableStats{Table: member}

	malformed, err := eachRow(ctx, p, member, func(row T) error {
		stats.Read++
		rec, reason, err := join(row)
		if err != nil {
			return err
		}
		switch reason {
		case reasonNotDrone:
			stats.NotDrone++
			return nil
		case reasonNoModel:
			stats.NoModel++
			return nil
		}
		if err := p.loader.Load(rec); err != nil {
			return err
		}
		stats.Written++
		return nil
	})
	stats.Malformed = malformed
	p.recordTable(stats)
	p.metrics.RecordsWritten.WithLabelValues(source).Add(float64(stats.Written))
	if err != nil {
		return stats, err
	}

	p.logger.Info("registrations joined",
		"table", member,
		"rows", stats.Read,
		"written", stats.Written,
		"not_drone", stats.NotDrone,
		"no_model", stats.NoModel,
		"malformed", stats.Malformed,
	)
	return stats, nil
}

// eachRow decodes every well-formed row of member into T and hands it to fn.
// It returns the number of malformed rows dropped.
func eachRow[T any](ctx context.Context, p *Pipeline, member string, fn func(T) error) (int, error) {
	rc, err := p.source.Open(member)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	rows := table.NewReader(rc)
	rows.OnSkip = func(line, fields int) {
		p.logger.Debug("skipping malformed row",
			"table", member, "line", line, "fields", fields, "want", len(rows.Header()))
	}

	dec, err := table.NewDecoder[T](rows)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", member, err)
	}

	for n := 0; ; n++ {
		if n%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return rows.Skipped(), err
			}
		}

		row, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return rows.Skipped(), nil
		}
		if err != nil {
			return rows.Skipped(), fmt.Errorf("%s: %w", member, err)
		}
		if err := fn(row); err != nil {
			return rows.Skipped(), fmt.Errorf("%s line %d: %w", member, rows.Line(), err)
		}
	}
}

func (p *Pipeline) recordTable(s TableStats) {
	p.metrics.RowsRead.WithLabelValues(s.Table).Add(float64(s.Read))
	p.metrics.RowsSkipped.WithLabelValues(s.Table, reasonMalformed).Add(float64(s.Malformed))
	p.metrics.RowsSkipped.WithLabelValues(s.Table, reasonNotDrone).Add(float64(s.NotDrone))
	p.metrics.RowsSkipped.WithLabelValues(s.Table, reasonNoModel).Add(float64(s.NoModel))
}
