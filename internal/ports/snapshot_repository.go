package ports

import (
	"context"

	"github.com/bft-labs/journal/internal/domain"
)

// SnapshotRepository handles snapshot persistence so numbering resumes across runs.
type SnapshotRepository interface {
	// Load retrieves the last saved snapshot.
	// Returns an empty snapshot and nil error if none exists.
	Load(ctx context.Context) (domain.Snapshot, error)

	// Save persists the snapshot atomically.
	Save(ctx context.Context, snap domain.Snapshot) error
}
