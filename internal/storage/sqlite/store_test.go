package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	logger, _ := test.NewNullLogger()
	s := NewSQLiteStore(path, logger)

	t1 := models.NewTask(3, "Buy milk", "2 litres", models.High, "2025-11-15")
	t2 := models.NewTask(1, "Call mum", "", models.Low, "2025-10-01")
	t1.MarkComplete()
	want := []*models.Task{t1, t2}

	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	store := NewSQLiteStore(path, logger).Load()

	got := store.GetAll()
	if len(got) != len(want) {
		t.Fatalf("loaded %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if *got[i] != *want[i] {
			t.Errorf("task %d = %+v, want %+v", i, *got[i], *want[i])
		}
	}
}

func TestSaveReplacesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	logger, _ := test.NewNullLogger()
	s := NewSQLiteStore(path, logger)

	first := []*models.Task{
		models.NewTask(1, "a", "", models.Low, "2025-01-01"),
		models.NewTask(2, "b", "", models.Low, "2025-01-02"),
	}
	if err := s.Save(first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(first[1:]); err != nil {
		t.Fatalf("save: %v", err)
	}

	store := s.Load()
	if store.Len() != 1 {
		t.Fatalf("loaded %d tasks, want 1", store.Len())
	}
	if _, ok := store.Get(2); !ok {
		t.Fatal("task 2 missing")
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	logger, hook := test.NewNullLogger()

	store := NewSQLiteStore(path, logger).Load()
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.InfoLevel {
		t.Fatalf("expected an info notice, got %+v", entry)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("load should not create the database, stat err = %v", err)
	}
}

func TestLoadForeignFileIsCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	if err := os.WriteFile(path, []byte(strings.Repeat("not a database ", 100)), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	logger, hook := test.NewNullLogger()

	store := NewSQLiteStore(path, logger).Load()
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %+v", entry)
	}
	if !strings.Contains(entry.Message, "corrupted") {
		t.Fatalf("unexpected message %q", entry.Message)
	}
}
