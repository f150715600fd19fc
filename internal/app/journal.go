package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/journal/internal/domain"
	"github.com/bft-labs/journal/internal/ports"
)

// Request describes one journal to render.
type Request struct {
	Title   string
	Entries []string
	Output  string
}

// Service builds records and hands them to a sink. It never writes files itself.
type Service struct {
	sink      ports.EntrySink
	snapshots ports.SnapshotRepository
	logger    ports.Logger
}

// NewService creates a service with the given dependencies.
// snapshots may be nil, in which case numbering always starts at 1.
func NewService(sink ports.EntrySink, snapshots ports.SnapshotRepository, logger ports.Logger) *Service {
	return &Service{
		sink:      sink,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Render creates (or restores) the record named req.Title, appends req.Entries
// and saves it to req.Output. The saved record is returned.
func (s *Service) Render(ctx context.Context, req Request) (*domain.Record, error) {
	counter := domain.NewCounter(1)
	record := domain.NewRecord(req.Title, counter)

	if s.snapshots != nil {
		snap, err := s.snapshots.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		if !snap.IsEmpty() {
			if err := snap.Validate(); err != nil {
				return nil, fmt.Errorf("load snapshot: %w", err)
			}
			if snap.Name != req.Title {
				return nil, fmt.Errorf("%w: snapshot %q, title %q", domain.ErrSnapshotMismatch, snap.Name, req.Title)
			}
			record, counter = snap.Restore()
			s.logger.Debug("restored snapshot",
				ports.Int("entries", record.Len()),
				ports.Uint64("next", counter.Peek()),
			)
		}
	}

	for _, text := range req.Entries {
		n := record.AddEntry(text)
		s.logger.Debug("entry added", ports.Uint64("seq", n))
	}

	if err := s.sink.Save(ctx, record, req.Output); err != nil {
		return nil, fmt.Errorf("save %s: %w", req.Output, err)
	}

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, domain.NewSnapshot(record, counter.Peek())); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
	}

	s.logger.Info("journal saved",
		ports.String("title", record.Name()),
		ports.String("output", req.Output),
		ports.Int("entries", record.Len()),
	)
	return record, nil
}
