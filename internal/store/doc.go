// Package store implements the persistence layer for the campus records
// system: a thread-safe collection of named tables persisted as a single
// JSON file, plus a generic typed repository over one table.
//
// # Overview
//
// All application data lives in one Store. Each table is an ordered sequence
// of records held as raw JSON; a per-table counter hands out auto-increment
// identifiers. Repositories are thin typed views constructed over a shared
// Store instance; they hold no data of their own, so two repositories over
// the same Store can never diverge.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│          Domain Services            │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│    Repository[T] (typed views)      │
//	│  All / ByID / Find / Create / ...   │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	┌─────────────────────────────────────┐
//	│              Store                  │
//	│  tables: map[name][]json.Raw        │
//	│  nextID: map[name]int64             │
//	│  mu: RWMutex, dirty flag            │
//	└─────────────────────────────────────┘
//	                 │
//	                 ▼
//	        campus data file (JSON)
//
// # File format
//
// The backing file is rewritten whole on every save:
//
//	{
//	  "in_memory_data": { "<table>": [ {"id": 1, ...}, ... ], ... },
//	  "next_id":        { "<table>": 2, ... }
//	}
//
// A missing or corrupt file is replaced by an empty structure at Open;
// load never fails the caller. After load, every counter is reconciled to
// max(existing ids)+1 so hand-edited files cannot cause identifier reuse.
//
// # Concurrency
//
// A single RWMutex guards tables, counters and the dirty flag. Reads take
// the shared lock and copy the table slice; writes (including the
// read-modify-write in Repository.Update) take the exclusive lock for the
// whole step. NextID is atomic: concurrent creates never share an
// identifier. Compound invariants spanning several calls (uniqueness,
// capacity) are serialized one level up, by the service layer's gate.
//
// # Durability
//
// Save overwrites the file and reports failure without rolling back memory;
// until the next successful save, memory and disk diverge and memory is
// authoritative. Flush saves only when something changed, and is called by
// the owner of the unit of work, not after every mutation.
package store
