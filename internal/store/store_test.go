package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data.json")
}

// TestStoreOpen tests loading behavior for fresh, existing and broken files
func TestStoreOpen(t *testing.T) {
	t.Run("missing file yields empty store", func(t *testing.T) {
		s := Open(tempPath(t))

		if got := s.count("users"); got != 0 {
			t.Errorf("Expected empty table, got %d rows", got)
		}
		if s.Dirty() {
			t.Error("Fresh store should not be dirty")
		}
	})

	t.Run("corrupt file yields empty store", func(t *testing.T) {
		path := tempPath(t)
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		s := Open(path)
		if got := s.count("users"); got != 0 {
			t.Errorf("Expected empty store after corrupt load, got %d rows", got)
		}
	})

	t.Run("existing file loads tables and counters", func(t *testing.T) {
		path := tempPath(t)
		blob := `{"in_memory_data":{"users":[{"id":1,"username":"a"}]},"next_id":{"users":2}}`
		if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		s := Open(path)
		if got := s.count("users"); got != 1 {
			t.Fatalf("Expected 1 row, got %d", got)
		}
		if id := s.NextID("users"); id != 2 {
			t.Errorf("Expected next id 2, got %d", id)
		}
	})

	t.Run("counter reconciled past hand-edited ids", func(t *testing.T) {
		path := tempPath(t)
		blob := `{"in_memory_data":{"users":[{"id":500}]},"next_id":{"users":3}}`
		if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		s := Open(path)
		if id := s.NextID("users"); id != 501 {
			t.Errorf("Expected reconciled id 501, got %d", id)
		}
	})

	t.Run("counter not moved backwards", func(t *testing.T) {
		path := tempPath(t)
		blob := `{"in_memory_data":{"users":[{"id":2}]},"next_id":{"users":100}}`
		if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		s := Open(path)
		if id := s.NextID("users"); id != 100 {
			t.Errorf("Expected counter kept at 100, got %d", id)
		}
	})
}

// TestNextID tests identifier allocation
func TestNextID(t *testing.T) {
	t.Run("monotonic from one", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")

		for want := int64(1); want <= 5; want++ {
			if got := s.NextID("users"); got != want {
				t.Fatalf("Expected id %d, got %d", want, got)
			}
		}
	})

	t.Run("independent per table", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")
		s.EnsureTable("courses")

		s.NextID("users")
		s.NextID("users")
		if got := s.NextID("courses"); got != 1 {
			t.Errorf("Expected courses counter unaffected, got %d", got)
		}
	})

	t.Run("concurrent allocation never repeats", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")

		const n = 200
		ids := make(chan int64, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ids <- s.NextID("users")
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[int64]bool, n)
		for id := range ids {
			if seen[id] {
				t.Fatalf("Identifier %d issued twice", id)
			}
			seen[id] = true
		}
	})
}

// TestEnsureTable tests lazy table creation
func TestEnsureTable(t *testing.T) {
	s := Open(tempPath(t))

	s.EnsureTable("notices")
	s.NextID("notices")
	s.NextID("notices")

	// A second EnsureTable must not reset rows or the counter
	s.insert("notices", json.RawMessage(`{"id":1}`))
	s.EnsureTable("notices")

	if got := s.count("notices"); got != 1 {
		t.Errorf("Expected 1 row after re-ensure, got %d", got)
	}
	if id := s.NextID("notices"); id != 3 {
		t.Errorf("Expected counter preserved at 3, got %d", id)
	}
}

// TestSaveAndFlush tests persistence and the dirty flag
func TestSaveAndFlush(t *testing.T) {
	t.Run("save and reload round-trip", func(t *testing.T) {
		path := tempPath(t)
		s := Open(path)
		s.EnsureTable("users")
		s.insert("users", json.RawMessage(`{"id":1,"username":"alice"}`))
		s.NextID("users")

		if err := s.Save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		reloaded := Open(path)
		if got := reloaded.count("users"); got != 1 {
			t.Fatalf("Expected 1 row after reload, got %d", got)
		}
		if id := reloaded.NextID("users"); id != 2 {
			t.Errorf("Expected counter 2 after reload, got %d", id)
		}
	})

	t.Run("file format matches expected shape", func(t *testing.T) {
		path := tempPath(t)
		s := Open(path)
		s.EnsureTable("users")
		s.insert("users", json.RawMessage(`{"id":1}`))

		if err := s.Save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		var img struct {
			Data   map[string][]json.RawMessage `json:"in_memory_data"`
			NextID map[string]int64             `json:"next_id"`
		}
		if err := json.Unmarshal(raw, &img); err != nil {
			t.Fatalf("File is not valid JSON: %v", err)
		}
		if len(img.Data["users"]) != 1 {
			t.Errorf("Expected users table in file, got %v", img.Data)
		}
		if img.NextID["users"] != 1 {
			t.Errorf("Expected next_id.users = 1, got %d", img.NextID["users"])
		}
	})

	t.Run("flush is a no-op when clean", func(t *testing.T) {
		path := tempPath(t)
		s := Open(path)
		s.EnsureTable("users")

		if err := s.Flush(); err != nil {
			t.Fatalf("Flush on clean store failed: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("Flush of a clean store should not create the file")
		}
	})

	t.Run("mutations set dirty, flush clears it", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")

		if s.Dirty() {
			t.Fatal("Store dirty before any mutation")
		}
		s.insert("users", json.RawMessage(`{"id":1}`))
		if !s.Dirty() {
			t.Fatal("Insert did not mark store dirty")
		}
		if err := s.Flush(); err != nil {
			t.Fatalf("Failed to flush: %v", err)
		}
		if s.Dirty() {
			t.Error("Flush did not clear dirty flag")
		}
	})
}

// TestRowOperations tests the low-level row primitives
func TestRowOperations(t *testing.T) {
	t.Run("update is applied in place", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")
		s.insert("users", json.RawMessage(`{"id":1,"username":"a"}`))

		_, ok := s.updateRow("users", 1, func(raw json.RawMessage) (json.RawMessage, bool) {
			return json.RawMessage(`{"id":1,"username":"b"}`), true
		})
		if !ok {
			t.Fatal("Update of existing row failed")
		}

		raw, ok := s.row("users", 1)
		if !ok {
			t.Fatal("Row disappeared after update")
		}
		var rec struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Username != "b" {
			t.Errorf("Expected updated username 'b', got %q (err %v)", rec.Username, err)
		}
	})

	t.Run("update of missing row reports failure", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")

		_, ok := s.updateRow("users", 42, func(raw json.RawMessage) (json.RawMessage, bool) {
			return raw, true
		})
		if ok {
			t.Error("Update of missing row reported success")
		}
	})

	t.Run("removeWhere keeps undecodable rows", func(t *testing.T) {
		s := Open(tempPath(t))
		s.EnsureTable("users")
		s.insert("users", json.RawMessage(`{"id":1}`))
		s.insert("users", json.RawMessage(`{broken`))
		s.insert("users", json.RawMessage(`{"id":2}`))

		removed := s.removeWhere("users", func(raw json.RawMessage) bool {
			var r rowID
			return json.Unmarshal(raw, &r) == nil
		})
		if removed != 2 {
			t.Fatalf("Expected 2 removed, got %d", removed)
		}
		if got := s.count("users"); got != 1 {
			t.Errorf("Expected broken row kept, table has %d rows", got)
		}
	})
}
