// Package fs implements ports backed by the local file system.
package fs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bft-labs/journal/internal/domain"
	"github.com/bft-labs/journal/internal/ports"
)

// DefaultFileMode is the permission used when the writer creates a file.
const DefaultFileMode os.FileMode = 0o644

// TextWriter implements ports.EntrySink by writing one entry per line to a plain text file.
type TextWriter struct {
	perm   os.FileMode
	logger ports.Logger
}

// NewTextWriter creates a TextWriter. A zero perm falls back to DefaultFileMode.
func NewTextWriter(perm os.FileMode, logger ports.Logger) *TextWriter {
	if perm == 0 {
		perm = DefaultFileMode
	}
	return &TextWriter{perm: perm, logger: logger}
}

// Save truncates dest and writes every entry of src followed by a newline.
// The file is closed before Save returns, including on failure.
func (w *TextWriter) Save(ctx context.Context, src ports.EntrySource, dest string) (err error) {
	if dest == "" {
		return domain.ErrEmptyDestination
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.perm)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", domain.ErrWrite, cerr))
		}
	}()

	entries := src.Entries()
	bw := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := bw.WriteString(e); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}

	if w.logger != nil {
		w.logger.Debug("entries written",
			ports.String("record", src.Name()),
			ports.String("dest", dest),
			ports.Int("entries", len(entries)),
		)
	}
	return nil
}
