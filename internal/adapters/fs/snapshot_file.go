package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/journal/internal/domain"
)

// SnapshotFileRepository implements ports.SnapshotRepository with one JSON document per journal.
type SnapshotFileRepository struct {
	path string
}

// NewSnapshotFileRepository creates a repository storing the snapshot at path.
func NewSnapshotFileRepository(path string) *SnapshotFileRepository {
	return &SnapshotFileRepository{path: path}
}

// Load reads the snapshot. A missing file is not an error and yields an empty snapshot.
// Snapshots whose numbering would repeat entries wrap domain.ErrCorruptSnapshot.
func (r *SnapshotFileRepository) Load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("read snapshot %s: %w", r.path, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: decode %s: %w", domain.ErrCorruptSnapshot, r.path, err)
	}
	if err := snap.Validate(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot %s: %w", r.path, err)
	}
	return snap, nil
}

// Save replaces the snapshot file atomically. The document is written to a
// temp file in the same directory and renamed over the old one; the temp file
// is removed if any step fails.
func (r *SnapshotFileRepository) Save(ctx context.Context, snap domain.Snapshot) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("refusing to save snapshot: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", r.path, err)
	}
	return nil
}

// Path returns the snapshot file path.
func (r *SnapshotFileRepository) Path() string {
	return r.path
}
