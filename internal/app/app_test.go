package app

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/storage/memory"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

// failingGateway loads an empty store and refuses every save.
type failingGateway struct{ saves int }

func (g *failingGateway) Save([]*models.Task) error {
	g.saves++
	return errors.New("disk full")
}

func (g *failingGateway) Load() *task.TaskStore { return task.NewTaskStore() }

func newApp(t *testing.T) (*TodoApp, *memory.MemoryStore) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	gw := memory.NewMemoryStore(logger)
	return NewTodoApp(gw, logger), gw
}

func reload(t *testing.T, gw *memory.MemoryStore) *TodoApp {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return NewTodoApp(memory.NewMemoryStoreFrom(gw.Snapshot(), logger), logger)
}

func TestAddTaskAssignsIncreasingIDsAndSaves(t *testing.T) {
	a, gw := newApp(t)

	first, err := a.AddTask("Buy milk", "", "High", "2025-11-15")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	second, err := a.AddTask("Call mum", "Sunday", "Low", "2025-11-16")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
	if first.Status != models.Pending {
		t.Fatalf("new task status = %s", first.Status)
	}
	if reloaded := reload(t, gw); reloaded.Count() != 2 {
		t.Fatalf("snapshot holds %d tasks, want 2", reloaded.Count())
	}
}

func TestNextIDFollowsLoadedMaximum(t *testing.T) {
	logger, _ := test.NewNullLogger()
	gw := memory.NewMemoryStore(logger)
	if err := gw.Save([]*models.Task{
		models.NewTask(4, "four", "", models.Low, "2025-01-01"),
		models.NewTask(11, "eleven", "", models.Low, "2025-01-01"),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	a := NewTodoApp(gw, logger)
	added, err := a.AddTask("next", "", "Medium", "2025-02-02")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if added.ID != 12 {
		t.Fatalf("id = %d, want 12", added.ID)
	}
}

func TestAddTaskValidation(t *testing.T) {
	cases := []struct {
		name                 string
		title, priority, due string
		want                 error
	}{
		{"empty title", "  ", "High", "2025-11-15", ErrEmptyTitle},
		{"bad priority", "t", "high", "2025-11-15", ErrInvalidPriority},
		{"bad date", "t", "High", "2025-02-30", ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, gw := newApp(t)
			if _, err := a.AddTask(tc.title, "", tc.priority, tc.due); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if a.Count() != 0 || gw.Snapshot() != nil {
				t.Fatal("invalid input must not reach the store")
			}
		})
	}
}

func TestCompleteAndReopenPersistStatus(t *testing.T) {
	a, gw := newApp(t)
	added, _ := a.AddTask("Buy milk", "", "High", "2025-11-15")

	if _, err := a.CompleteTask(added.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	got, err := reload(t, gw).Task(added.ID)
	if err != nil || got.Status != models.Complete {
		t.Fatalf("reloaded = %+v, %v; want Complete", got, err)
	}

	if _, err := a.ReopenTask(added.ID); err != nil {
		t.Fatalf("ReopenTask: %v", err)
	}
	if got := a.TasksByStatus(models.Complete); len(got) != 0 {
		t.Fatalf("complete tasks = %d, want 0", len(got))
	}
}

func TestMissingIDIsNotFound(t *testing.T) {
	a, _ := newApp(t)

	if _, err := a.CompleteTask(42); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("CompleteTask: %v", err)
	}
	if _, err := a.ReopenTask(42); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("ReopenTask: %v", err)
	}
	if _, err := a.EditTask(42, TaskEdit{}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("EditTask: %v", err)
	}
	if err := a.DeleteTask(42); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("DeleteTask: %v", err)
	}
}

func TestEditTask(t *testing.T) {
	a, gw := newApp(t)
	added, _ := a.AddTask("Buy milk", "", "High", "2025-11-15")

	title, priority, due := "Buy oat milk", "Low", "2025-12-01"
	if _, err := a.EditTask(added.ID, TaskEdit{Title: &title, Priority: &priority, DueDate: &due}); err != nil {
		t.Fatalf("EditTask: %v", err)
	}

	got, _ := reload(t, gw).Task(added.ID)
	want := models.Task{ID: added.ID, Title: title, Priority: models.Low, DueDate: due, Status: models.Pending}
	if *got != want {
		t.Fatalf("got %+v, want %+v", *got, want)
	}
}

func TestEditTaskRejectsInvalidFieldsAtomically(t *testing.T) {
	a, _ := newApp(t)
	added, _ := a.AddTask("Buy milk", "", "High", "2025-11-15")

	title, due := "changed", "2025-13-01"
	if _, err := a.EditTask(added.ID, TaskEdit{Title: &title, DueDate: &due}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
	if got, _ := a.Task(added.ID); got.Title != "Buy milk" {
		t.Fatalf("title changed to %q", got.Title)
	}
}

func TestDeleteTask(t *testing.T) {
	a, gw := newApp(t)
	added, _ := a.AddTask("Buy milk", "", "High", "2025-11-15")

	if err := a.DeleteTask(added.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if reload(t, gw).Count() != 0 {
		t.Fatal("deleted task still persisted")
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	logger, _ := test.NewNullLogger()
	gw := &failingGateway{}
	a := NewTodoApp(gw, logger)

	added, err := a.AddTask("Buy milk", "", "High", "2025-11-15")
	if !errors.Is(err, ErrNotSaved) {
		t.Fatalf("err = %v, want ErrNotSaved", err)
	}
	if added == nil || a.Count() != 1 {
		t.Fatal("task should stay in memory after a failed save")
	}
	if _, err := a.CompleteTask(added.ID); !errors.Is(err, ErrNotSaved) {
		t.Fatalf("err = %v, want ErrNotSaved", err)
	}
	if gw.saves != 2 {
		t.Fatalf("saves = %d, want 2 (no automatic retry)", gw.saves)
	}
}

func TestQueries(t *testing.T) {
	a, _ := newApp(t)
	a.AddTask("December", "", "Low", "2025-12-01")
	a.AddTask("January", "", "High", "2025-01-10")
	a.AddTask("June", "", "High", "2025-06-15")

	if got := a.TasksByPriority(models.High); len(got) != 2 {
		t.Fatalf("high = %d, want 2", len(got))
	}
	sorted := a.TasksByDueDate()
	if sorted[0].Title != "January" || sorted[1].Title != "June" || sorted[2].Title != "December" {
		t.Fatalf("unexpected order: %v", sorted)
	}
	if len(a.Tasks()) != 3 {
		t.Fatalf("tasks = %d, want 3", len(a.Tasks()))
	}
}
