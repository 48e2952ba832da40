package directory

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/elc-tools/pubrec/internal/observability"
)

// Store holds the current directory snapshot and rebuilds it on demand.
// Readers always see a complete snapshot: a reload builds the replacement
// fully before swapping the pointer, so in-flight queries finish against a
// consistent view.
type Store struct {
	path       string
	sheetNames []string
	logger     *slog.Logger
	metrics    *observability.Metrics
	snap       atomic.Pointer[Snapshot]
}

// NewStore creates a Store for the workbook at path. No snapshot exists
// until the first Load.
func NewStore(path string, sheetNames []string, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		path:       path,
		sheetNames: sheetNames,
		logger:     logger,
		metrics:    metrics,
	}
}

// Load builds a fresh snapshot from the workbook and swaps it in atomically.
// A load that reports missing required columns still swaps — the unusable
// state must be visible to callers — but an unreadable workbook leaves the
// previous snapshot in place.
func (s *Store) Load() error {
	snap, err := Load(s.path, s.sheetNames)
	if err != nil {
		s.metrics.DirectoryLoadErrors.Inc()
		return err
	}

	s.snap.Store(snap)
	s.metrics.DirectoryLoads.Inc()
	s.metrics.DirectoryRows.Set(float64(len(snap.Rows)))
	if snap.Usable() {
		s.metrics.DirectoryUsable.Set(1)
	} else {
		s.metrics.DirectoryUsable.Set(0)
	}

	if !snap.Usable() {
		s.logger.Warn("directory loaded but unusable",
			"sheet", snap.Report.SheetName,
			"missing_columns", snap.Report.MissingColumns,
		)
		return nil
	}
	s.logger.Info("directory loaded",
		"sheet", snap.Report.SheetName,
		"rows", snap.Report.RowCount,
		"skipped_rows", snap.Report.SkippedRows,
	)
	return nil
}

// Snapshot returns the current snapshot, or nil before the first successful
// Load.
func (s *Store) Snapshot() *Snapshot {
	return s.snap.Load()
}

// CheckReadiness reports nil once a snapshot has been loaded, usable or not.
func (s *Store) CheckReadiness(_ context.Context) error {
	if s.snap.Load() == nil {
		return errors.New("directory has not been loaded yet")
	}
	return nil
}
