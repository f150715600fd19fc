// Package domain contains the core domain entities and value objects for journal.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (file system, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Record]: A named, append-only collection of numbered text entries
//   - [Counter]: A monotonic sequence shared by the records that number from it
//   - [Snapshot]: Persisted form of a record used to resume numbering across runs
//
// # Design Principles
//
// A Record knows how to number and hold entries and nothing else. Writing
// entries anywhere is the job of a ports.EntrySink.
package domain
