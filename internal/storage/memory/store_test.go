package memory

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

func TestLoadBeforeSaveIsEmpty(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := NewMemoryStore(logger)

	if n := m.Load().Len(); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.InfoLevel {
		t.Fatalf("expected an info notice, got %+v", entry)
	}
	if m.Snapshot() != nil {
		t.Fatal("expected no snapshot before first save")
	}
}

func TestSaveThenLoad(t *testing.T) {
	logger, _ := test.NewNullLogger()
	m := NewMemoryStore(logger)

	task := models.NewTask(4, "Water plants", "balcony", models.Medium, "2025-07-04")
	task.MarkComplete()
	if err := m.Save([]*models.Task{task}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := m.Load().Get(4)
	if !ok {
		t.Fatal("task 4 missing")
	}
	if *got != *task {
		t.Fatalf("got %+v, want %+v", *got, *task)
	}
	// loaded tasks are copies, not the saved pointers
	if got == task {
		t.Fatal("load returned the saved pointer")
	}
}

func TestLoadCorruptSnapshot(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := NewMemoryStoreFrom([]byte("[{"), logger)

	if n := m.Load().Len(); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a warning, got %+v", entry)
	}
}
