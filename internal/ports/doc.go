// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [EntrySource]: Read-only view of a record handed to sinks
//   - [EntrySink]: Persists a record's entries to a destination
//   - [SnapshotRepository]: Persists and loads record snapshots
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (text files, memory, zerolog, etc.).
package ports
