package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// fileImage is the on-disk shape of the store. The whole structure is
// serialized and rewritten on every save; there is no incremental journal.
type fileImage struct {
	Data   map[string][]json.RawMessage `json:"in_memory_data"`
	NextID map[string]int64             `json:"next_id"`
}

// rowID is the minimal projection used to read a record's identifier
// without knowing its full shape.
type rowID struct {
	ID int64 `json:"id"`
}

// Store holds every table of the application plus a per-table identifier
// counter, and is the only component that reads or writes the backing file.
// Repositories are typed views over a shared *Store; constructing two stores
// over the same file produces divergent in-memory copies, so exactly one
// Store is opened per data file and passed to all repositories.
//
// All exported operations are safe for concurrent use. A single RWMutex
// guards tables, counters and the dirty flag; each primitive (including the
// read-modify-write performed by UpdateRow) runs under one lock acquisition,
// so concurrent callers never observe a half-applied mutation and NextID
// never hands out the same identifier twice.
type Store struct {
	mu     sync.RWMutex
	path   string
	tables map[string][]json.RawMessage
	nextID map[string]int64
	dirty  bool
}

// Open loads the store from path. A missing file yields an empty store; a
// file that cannot be read or parsed is logged and likewise yields an empty
// store rather than failing the caller (the backing file is disposable
// state, not a source of truth the process can refuse to start without).
//
// After loading, every table's counter is reconciled against the highest
// identifier actually present, so hand-edited files cannot cause NextID to
// reissue an identifier.
func Open(path string) *Store {
	s := &Store{
		path:   path,
		tables: make(map[string][]json.RawMessage),
		nextID: make(map[string]int64),
	}
	s.load()
	s.reconcileCounters()
	return s
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("store: unreadable data file, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var img fileImage
	if err := json.Unmarshal(raw, &img); err != nil {
		slog.Warn("store: corrupt data file, starting empty", "path", s.path, "error", err)
		return
	}
	if img.Data != nil {
		s.tables = img.Data
	}
	if img.NextID != nil {
		s.nextID = img.NextID
	}
}

// reconcileCounters advances each table's counter past the highest
// identifier found in its rows. Runs once at Open, before any NextID call;
// counters never move backwards.
func (s *Store) reconcileCounters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, rows := range s.tables {
		var maxID int64
		for _, raw := range rows {
			var r rowID
			if err := json.Unmarshal(raw, &r); err == nil && r.ID > maxID {
				maxID = r.ID
			}
		}
		if next := s.nextID[name]; maxID >= next {
			s.nextID[name] = maxID + 1
		}
	}
}

// EnsureTable lazily creates an empty table and its counter. Idempotent;
// an existing table is left untouched.
func (s *Store) EnsureTable(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[name]; !ok {
		s.tables[name] = []json.RawMessage{}
	}
	if _, ok := s.nextID[name]; !ok {
		s.nextID[name] = 1
	}
}

// NextID returns the table's current counter value and increments it.
// Two concurrent callers never receive the same identifier.
func (s *Store) NextID(table string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.nextID[table]
	if !ok {
		id = 1
	}
	s.nextID[table] = id + 1
	return id
}

// Save serializes the entire store and overwrites the backing file. On
// failure the error is reported and the in-memory state stays authoritative;
// nothing is rolled back. The next successful save heals the divergence.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	img := fileImage{Data: s.tables, NextID: s.nextID}
	raw, err := json.MarshalIndent(img, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		slog.Error("store: save failed", "path", s.path, "error", err)
		return err
	}
	s.dirty = false
	return nil
}

// Flush saves only when a mutation happened since the last successful save.
// Callers invoke it at the end of a unit of work rather than after every
// mutation, bounding I/O cost.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	return s.saveLocked()
}

// Dirty reports whether in-memory state has diverged from the file.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// rows returns a snapshot of a table. The slice is copied so callers can
// iterate without holding the lock; the raw messages themselves are never
// mutated in place.
func (s *Store) rows(table string) []json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.tables[table]
	out := make([]json.RawMessage, len(src))
	copy(out, src)
	return out
}

// row returns the record with the given identifier.
func (s *Store) row(table string, id int64) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, raw := range s.tables[table] {
		var r rowID
		if err := json.Unmarshal(raw, &r); err == nil && r.ID == id {
			return raw, true
		}
	}
	return nil, false
}

// insert appends a record to a table. Identifier assignment is the caller's
// concern; the store appends whatever it is given.
func (s *Store) insert(table string, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLocked(table)
	s.tables[table] = append(s.tables[table], raw)
	s.dirty = true
}

// updateRow applies fn to the record with the given identifier and stores
// the result, all under one lock acquisition. fn returning ok=false leaves
// the record untouched.
func (s *Store) updateRow(table string, id int64, fn func(json.RawMessage) (json.RawMessage, bool)) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	for i, raw := range rows {
		var r rowID
		if err := json.Unmarshal(raw, &r); err != nil || r.ID != id {
			continue
		}
		updated, ok := fn(raw)
		if !ok {
			return nil, false
		}
		rows[i] = updated
		s.dirty = true
		return updated, true
	}
	return nil, false
}

// remove deletes the record with the given identifier, reporting whether a
// record was actually removed.
func (s *Store) remove(table string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	for i, raw := range rows {
		var r rowID
		if err := json.Unmarshal(raw, &r); err == nil && r.ID == id {
			s.tables[table] = append(rows[:i:i], rows[i+1:]...)
			s.dirty = true
			return true
		}
	}
	return false
}

// removeWhere deletes every record matching pred and returns how many were
// removed. Records that cannot be decoded are kept: a bulk delete must not
// destroy rows it cannot positively identify.
func (s *Store) removeWhere(table string, pred func(json.RawMessage) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	kept := rows[:0:0]
	removed := 0
	for _, raw := range rows {
		if pred(raw) {
			removed++
			continue
		}
		kept = append(kept, raw)
	}
	if removed > 0 {
		s.tables[table] = kept
		s.dirty = true
	}
	return removed
}

// count returns the number of records in a table.
func (s *Store) count(table string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[table])
}

func (s *Store) ensureLocked(table string) {
	if _, ok := s.tables[table]; !ok {
		s.tables[table] = []json.RawMessage{}
	}
	if _, ok := s.nextID[table]; !ok {
		s.nextID[table] = 1
	}
}
