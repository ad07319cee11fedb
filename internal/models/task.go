package models

import (
	"fmt"
)

// Priority represents the importance level of a task
type Priority int

const (
	High Priority = iota + 1
	Medium
	Low
)

// String returns the string representation of Priority
func (p Priority) String() string {
	switch p {
	case High:
		return "High"
	case Medium:
		return "Medium"
	case Low:
		return "Low"
	default:
		return "Unknown"
	}
}

// ParsePriority converts the exact text form of a priority back into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "High":
		return High, nil
	case "Medium":
		return Medium, nil
	case "Low":
		return Low, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

// TaskStatus represents the current status of a task
type TaskStatus int

const (
	Pending TaskStatus = iota
	Complete
)

// String returns the string representation of TaskStatus
func (s TaskStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Complete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// ParseStatus converts the text form of a status back into a TaskStatus.
func ParseStatus(s string) (TaskStatus, error) {
	switch s {
	case "Pending":
		return Pending, nil
	case "Complete":
		return Complete, nil
	default:
		return 0, fmt.Errorf("unknown status %q", s)
	}
}

// Task represents a single to-do item.
// Fields are assigned as given; callers validate input before building or editing one.
type Task struct {
	ID          int
	Title       string
	Description string
	Priority    Priority
	DueDate     string // YYYY-MM-DD
	Status      TaskStatus
}

// NewTask creates a pending task with the caller-assigned id.
func NewTask(id int, title, description string, priority Priority, dueDate string) *Task {
	return &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Status:      Pending,
	}
}

// MarkComplete marks the task as completed.
func (t *Task) MarkComplete() {
	t.Status = Complete
}

// MarkIncomplete moves the task back to pending.
func (t *Task) MarkIncomplete() {
	t.Status = Pending
}

// IsComplete reports whether the task has been completed.
func (t *Task) IsComplete() bool {
	return t.Status == Complete
}

func (t *Task) String() string {
	return fmt.Sprintf("[%d] %s - %s - Due: %s - %s", t.ID, t.Title, t.Priority, t.DueDate, t.Status)
}
