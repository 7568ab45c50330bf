package store

import (
	"encoding/json"
	"log/slog"
)

// Record is implemented by every entity persisted in the store.
type Record interface {
	// RecordID returns the store-assigned identifier.
	RecordID() int64
}

// Repository provides typed CRUD and predicate queries over exactly one
// table of a shared Store. It holds no data of its own: every call reads or
// writes the store's single copy, so any number of repositories over the
// same Store always agree.
//
// Match order for Find and FindOne is table iteration order, which is
// insertion order unless records have been removed in between.
type Repository[T Record] struct {
	store *Store
	table string
}

// NewRepository creates a typed view over one table, creating the table and
// its counter if the backing file never mentioned it.
func NewRepository[T Record](s *Store, table string) *Repository[T] {
	s.EnsureTable(table)
	return &Repository[T]{store: s, table: table}
}

// Table returns the table name this repository is bound to.
func (r *Repository[T]) Table() string {
	return r.table
}

// NextID allocates the next identifier for this repository's table.
func (r *Repository[T]) NextID() int64 {
	return r.store.NextID(r.table)
}

// All returns every record in insertion order. Records that fail to decode
// are skipped, mirroring the store's fail-soft load behavior.
func (r *Repository[T]) All() []T {
	rows := r.store.rows(r.table)
	out := make([]T, 0, len(rows))
	for _, raw := range rows {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("store: skipping undecodable record", "table", r.table, "error", err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ByID returns the record with the given identifier.
func (r *Repository[T]) ByID(id int64) (T, bool) {
	var rec T
	raw, ok := r.store.row(r.table, id)
	if !ok {
		return rec, false
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		slog.Warn("store: skipping undecodable record", "table", r.table, "error", err)
		return rec, false
	}
	return rec, true
}

// Find returns every record matching pred, in insertion order.
func (r *Repository[T]) Find(pred func(T) bool) []T {
	var out []T
	for _, rec := range r.All() {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FindOne returns the first record matching pred.
func (r *Repository[T]) FindOne(pred func(T) bool) (T, bool) {
	for _, rec := range r.All() {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Create appends a record to the table. The caller must have obtained the
// record's identifier from NextID beforehand; Create does not assign one.
func (r *Repository[T]) Create(rec T) T {
	raw, err := json.Marshal(rec)
	if err != nil {
		slog.Error("store: cannot encode record", "table", r.table, "error", err)
		return rec
	}
	r.store.insert(r.table, raw)
	return rec
}

// Update applies mutate to the stored record with the given identifier and
// persists the result in one atomic step. Only the fields the mutator
// touches change; everything else keeps its stored value.
func (r *Repository[T]) Update(id int64, mutate func(*T)) (T, bool) {
	var result T
	raw, ok := r.store.updateRow(r.table, id, func(current json.RawMessage) (json.RawMessage, bool) {
		var rec T
		if err := json.Unmarshal(current, &rec); err != nil {
			slog.Warn("store: skipping undecodable record", "table", r.table, "error", err)
			return nil, false
		}
		mutate(&rec)
		updated, err := json.Marshal(rec)
		if err != nil {
			slog.Error("store: cannot encode record", "table", r.table, "error", err)
			return nil, false
		}
		return updated, true
	})
	if !ok {
		return result, false
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, false
	}
	return result, true
}

// Delete removes the record with the given identifier, reporting whether a
// record was actually removed.
func (r *Repository[T]) Delete(id int64) bool {
	return r.store.remove(r.table, id)
}

// DeleteWhere removes every record matching pred and returns how many were
// removed. Cascade helpers on the entity repositories are built on it.
func (r *Repository[T]) DeleteWhere(pred func(T) bool) int {
	return r.store.removeWhere(r.table, func(raw json.RawMessage) bool {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return false
		}
		return pred(rec)
	})
}

// Count returns the number of records in the table.
func (r *Repository[T]) Count() int {
	return r.store.count(r.table)
}
