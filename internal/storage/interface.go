package storage

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

// Common errors that can be returned by any storage implementation
var (
	ErrCorruptSnapshot = errors.New("snapshot is corrupted")
	ErrNoSnapshot      = fmt.Errorf("no snapshot: %w", fs.ErrNotExist)
)

// Gateway persists full snapshots of a task store.
type Gateway interface {
	// Save overwrites the backing store with every given task.
	// Failures are logged and returned; they are never fatal to the caller.
	Save(tasks []*models.Task) error

	// Load reads the last snapshot. It never fails: a missing, corrupted or
	// unreadable snapshot yields an empty store.
	Load() *task.TaskStore
}

// Record is the serialized form of one task.
// Pointer fields let decoding tell a missing key from a zero value.
type Record struct {
	ID          *int    `json:"id" yaml:"id"`
	Title       *string `json:"title" yaml:"title"`
	Description *string `json:"description" yaml:"description"`
	Priority    *string `json:"priority" yaml:"priority"`
	DueDate     *string `json:"due_date" yaml:"due_date"`
	Status      *string `json:"status" yaml:"status"`
}

// NewRecord converts a task to its serialized form.
func NewRecord(t *models.Task) Record {
	id := t.ID
	title := t.Title
	description := t.Description
	priority := t.Priority.String()
	dueDate := t.DueDate
	status := t.Status.String()
	return Record{
		ID:          &id,
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     &dueDate,
		Status:      &status,
	}
}

// NewRecords converts tasks to records, keeping their order.
func NewRecords(tasks []*models.Task) []Record {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, NewRecord(t))
	}
	return records
}

// Task rebuilds the task described by the record. Every key is mandatory.
func (r Record) Task() (*models.Task, error) {
	switch {
	case r.ID == nil:
		return nil, missingField("id")
	case r.Title == nil:
		return nil, missingField("title")
	case r.Description == nil:
		return nil, missingField("description")
	case r.Priority == nil:
		return nil, missingField("priority")
	case r.DueDate == nil:
		return nil, missingField("due_date")
	case r.Status == nil:
		return nil, missingField("status")
	}

	priority, err := models.ParsePriority(*r.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: task %d: %v", ErrCorruptSnapshot, *r.ID, err)
	}
	status, err := models.ParseStatus(*r.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: task %d: %v", ErrCorruptSnapshot, *r.ID, err)
	}

	t := models.NewTask(*r.ID, *r.Title, *r.Description, priority, *r.DueDate)
	// NewTask always starts pending; restore what was persisted.
	t.Status = status
	return t, nil
}

// Seed builds a store from records in their persisted order.
func Seed(records []Record) (*task.TaskStore, error) {
	store := task.NewTaskStore()
	for _, r := range records {
		t, err := r.Task()
		if err != nil {
			return nil, err
		}
		store.Add(t)
	}
	return store, nil
}

// Recover logs why a load failed and returns the empty store to continue with.
func Recover(log logrus.FieldLogger, source string, err error) *task.TaskStore {
	entry := log.WithField("source", source)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		entry.Infof("%s not found, starting with an empty task list", source)
	case errors.Is(err, ErrCorruptSnapshot):
		entry.WithError(err).Warnf("error reading %s, file may be corrupted; starting fresh", source)
	default:
		entry.WithError(err).Warn("unexpected error loading tasks")
	}
	return task.NewTaskStore()
}

func missingField(name string) error {
	return fmt.Errorf("%w: record missing %q", ErrCorruptSnapshot, name)
}
