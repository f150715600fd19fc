// Package journal provides an embeddable record keeper with pluggable persistence.
//
// A [Record] only collects numbered entries. Writing them anywhere is the job
// of a [Writer]. The two change for different reasons and are kept apart.
//
// # Basic Usage
//
//	r := journal.NewRecord("Dear Diary")
//	r.AddEntry("I ate a bug")
//	r.AddEntry("I cried today")
//
//	if err := journal.Save(ctx, r, "diary.txt"); err != nil {
//	    log.Fatal(err)
//	}
//
// diary.txt then contains:
//
//	1: I ate a bug
//	2: I cried today
//
// # Numbering
//
// Records created without [WithSequencer] share [ProcessCounter], so entry
// numbers are unique across every such record in the process. Pass a
// [Counter] of your own to number a group of records independently.
//
// # Writers
//
// [NewTextWriter] writes one entry per line to a file, truncating it first.
// [NewMemoryWriter] keeps lines in memory and is convenient in tests.
// Any type implementing [Writer] can be used instead.
//
// # Version
//
// Current version: 1.0.0
package journal
