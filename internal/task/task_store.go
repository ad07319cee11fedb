package task

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

// ErrTaskNotFound is returned when an operation targets an id the store does not hold.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore manages a collection of tasks.
type TaskStore struct {
	tasks map[int]*models.Task // Map of tasks (key: task ID)
	order []int                // Insertion order of the keys
}

// NewTaskStore initializes an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[int]*models.Task),
	}
}

// Add stores the task under its ID. An existing task with the same ID is
// replaced in place and keeps its position.
func (ts *TaskStore) Add(t *models.Task) {
	if _, exists := ts.tasks[t.ID]; !exists {
		ts.order = append(ts.order, t.ID)
	}
	ts.tasks[t.ID] = t
}

// Delete removes the task with the given ID.
func (ts *TaskStore) Delete(id int) error {
	if _, exists := ts.tasks[id]; !exists {
		return fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
	}

	delete(ts.tasks, id)
	for i, key := range ts.order {
		if key == id {
			ts.order = append(ts.order[:i], ts.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the task with the given ID, if present.
func (ts *TaskStore) Get(id int) (*models.Task, bool) {
	t, ok := ts.tasks[id]
	return t, ok
}

// GetAll returns every task in insertion order.
func (ts *TaskStore) GetAll() []*models.Task {
	return ts.collect(func(*models.Task) bool { return true })
}

// FilterByStatus returns the tasks with the given status.
func (ts *TaskStore) FilterByStatus(status models.TaskStatus) []*models.Task {
	return ts.collect(func(t *models.Task) bool { return t.Status == status })
}

// FilterByPriority returns the tasks with the given priority.
func (ts *TaskStore) FilterByPriority(priority models.Priority) []*models.Task {
	return ts.collect(func(t *models.Task) bool { return t.Priority == priority })
}

// SortByDueDate returns every task ordered by due date, earliest first.
// YYYY-MM-DD text sorts chronologically, and tasks sharing a date keep their
// insertion order.
func (ts *TaskStore) SortByDueDate() []*models.Task {
	tasks := ts.GetAll()
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
	return tasks
}

// Len returns the number of tasks in the store.
func (ts *TaskStore) Len() int {
	return len(ts.order)
}

func (ts *TaskStore) collect(match func(*models.Task) bool) []*models.Task {
	tasks := make([]*models.Task, 0, len(ts.order))
	for _, id := range ts.order {
		if t := ts.tasks[id]; match(t) {
			tasks = append(tasks, t)
		}
	}
	return tasks
}
