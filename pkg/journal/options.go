package journal

import (
	"os"

	logAdapter "github.com/bft-labs/journal/internal/adapters/log"
	"github.com/bft-labs/journal/internal/domain"
	"github.com/bft-labs/journal/internal/ports"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// Option configures records and writers created by this package.
type Option func(*options)

// options holds the optional configuration.
type options struct {
	sequencer domain.Sequencer
	fileMode  os.FileMode
	logger    ports.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		sequencer: domain.ProcessCounter(),
		fileMode:  0o644,
		logger:    logAdapter.NewNoopLogger(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSequencer numbers a record's entries from seq instead of ProcessCounter.
// A nil seq, including a nil *Counter, keeps ProcessCounter.
func WithSequencer(seq Sequencer) Option {
	return func(o *options) {
		if c, ok := seq.(*Counter); ok && c == nil {
			return
		}
		if seq != nil {
			o.sequencer = seq
		}
	}
}

// WithFileMode sets the permission used when a text writer creates a file.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithLogger sets a custom logger for writers.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
