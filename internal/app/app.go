package app

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/storage"
	"github.com/tiwariParth/go-task-manager/internal/task"
	"github.com/tiwariParth/go-task-manager/internal/validator"
)

// Validation and persistence errors reported to the shell.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("priority must be High, Medium, or Low")
	ErrInvalidDate     = errors.New("due date must be a real date in YYYY-MM-DD form")
	// ErrNotSaved means the change was applied in memory but could not be persisted.
	ErrNotSaved = errors.New("tasks could not be saved")
)

// TodoApp ties the task store to its persistence gateway. It allocates task
// IDs and saves a full snapshot after every mutation.
type TodoApp struct {
	store   *task.TaskStore
	gateway storage.Gateway
	nextID  int
	log     logrus.FieldLogger
}

// NewTodoApp loads the last snapshot from gateway and prepares the next ID.
func NewTodoApp(gateway storage.Gateway, log logrus.FieldLogger) *TodoApp {
	store := gateway.Load()

	nextID := 1
	for _, t := range store.GetAll() {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}

	return &TodoApp{
		store:   store,
		gateway: gateway,
		nextID:  nextID,
		log:     log.WithField("component", "app"),
	}
}

// TaskEdit carries the fields to change. Nil fields are left untouched.
type TaskEdit struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
}

// Count returns the number of tasks held.
func (app *TodoApp) Count() int {
	return app.store.Len()
}

// Task returns the task with the given ID.
func (app *TodoApp) Task(id int) (*models.Task, error) {
	t, ok := app.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("task with ID %d: %w", id, task.ErrTaskNotFound)
	}
	return t, nil
}

// Tasks returns every task in store order.
func (app *TodoApp) Tasks() []*models.Task {
	return app.store.GetAll()
}

// TasksByStatus returns the tasks with the given status.
func (app *TodoApp) TasksByStatus(status models.TaskStatus) []*models.Task {
	return app.store.FilterByStatus(status)
}

// TasksByPriority returns the tasks with the given priority.
func (app *TodoApp) TasksByPriority(priority models.Priority) []*models.Task {
	return app.store.FilterByPriority(priority)
}

// TasksByDueDate returns every task ordered by due date.
func (app *TodoApp) TasksByDueDate() []*models.Task {
	return app.store.SortByDueDate()
}

// AddTask validates the input, stores a new pending task and saves.
func (app *TodoApp) AddTask(title, description, priority, dueDate string) (*models.Task, error) {
	if !validator.ValidateTitle(title) {
		return nil, ErrEmptyTitle
	}
	p, err := parsePriority(priority)
	if err != nil {
		return nil, err
	}
	if !validator.ValidateDate(dueDate) {
		return nil, ErrInvalidDate
	}

	t := models.NewTask(app.nextID, title, description, p, dueDate)
	app.store.Add(t)
	app.nextID++
	app.log.WithField("id", t.ID).Debug("task added")

	return t, app.save()
}

// CompleteTask marks the task as complete and saves.
func (app *TodoApp) CompleteTask(id int) (*models.Task, error) {
	t, err := app.Task(id)
	if err != nil {
		return nil, err
	}
	t.MarkComplete()
	return t, app.save()
}

// ReopenTask marks the task as pending again and saves.
func (app *TodoApp) ReopenTask(id int) (*models.Task, error) {
	t, err := app.Task(id)
	if err != nil {
		return nil, err
	}
	t.MarkIncomplete()
	return t, app.save()
}

// EditTask applies the edit after validating every provided field, then saves.
// Nothing is changed when any field is invalid.
func (app *TodoApp) EditTask(id int, edit TaskEdit) (*models.Task, error) {
	t, err := app.Task(id)
	if err != nil {
		return nil, err
	}

	if edit.Title != nil && !validator.ValidateTitle(*edit.Title) {
		return nil, ErrEmptyTitle
	}
	var priority models.Priority
	if edit.Priority != nil {
		if priority, err = parsePriority(*edit.Priority); err != nil {
			return nil, err
		}
	}
	if edit.DueDate != nil && !validator.ValidateDate(*edit.DueDate) {
		return nil, ErrInvalidDate
	}

	if edit.Title != nil {
		t.Title = *edit.Title
	}
	if edit.Description != nil {
		t.Description = *edit.Description
	}
	if edit.Priority != nil {
		t.Priority = priority
	}
	if edit.DueDate != nil {
		t.DueDate = *edit.DueDate
	}
	return t, app.save()
}

// DeleteTask removes the task and saves.
func (app *TodoApp) DeleteTask(id int) error {
	if err := app.store.Delete(id); err != nil {
		return err
	}
	return app.save()
}

func (app *TodoApp) save() error {
	if err := app.gateway.Save(app.store.GetAll()); err != nil {
		return fmt.Errorf("%w: %v", ErrNotSaved, err)
	}
	return nil
}

func parsePriority(s string) (models.Priority, error) {
	if !validator.ValidatePriority(s) {
		return 0, ErrInvalidPriority
	}
	return models.ParsePriority(s)
}
