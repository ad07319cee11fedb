package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tiwariParth/go-task-manager/internal/app"
	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/validator"
)

var menuItems = []string{
	"1. Add New Task",
	"2. View All Tasks",
	"3. View Tasks by Status",
	"4. View Tasks by Priority",
	"5. Mark Task as Complete",
	"6. Mark Task as Incomplete",
	"7. Edit Task",
	"8. Delete Task",
	"9. Sort Tasks by Due Date",
	"0. Exit",
}

// RunMenu runs the interactive menu until the user exits or input ends.
func (c *CLI) RunMenu() error {
	fmt.Fprintf(c.out, "%s Loaded %d task(s) from file.\n", Green("✓"), c.App.Count())
	fmt.Fprintln(c.out, Bold("\nWelcome to Task Manager!"))

	for {
		c.showMenu()
		choice, err := c.prompt("\nEnter your choice (0-9): ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = c.menuAdd()
		case "2":
			c.menuShow("All Tasks", c.App.Tasks())
		case "3":
			err = c.menuByStatus()
		case "4":
			err = c.menuByPriority()
		case "5":
			err = c.menuSetStatus(true)
		case "6":
			err = c.menuSetStatus(false)
		case "7":
			err = c.menuEdit()
		case "8":
			err = c.menuDelete()
		case "9":
			c.menuShow("Tasks Sorted by Due Date", c.App.TasksByDueDate())
		case "0":
			fmt.Fprintln(c.out, "\nThank you for using Task Manager!")
			fmt.Fprintln(c.out, "All tasks saved. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, Red("\n✗ Invalid choice! Please enter a number between 0-9."))
		}
		if err != nil {
			return endOfInput(err)
		}

		if _, err := c.prompt("\nPress Enter to continue..."); err != nil {
			return endOfInput(err)
		}
	}
}

func (c *CLI) showMenu() {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprintln(c.out, Bold("TASK MANAGER - MAIN MENU"))
	fmt.Fprintln(c.out, rule)
	for _, item := range menuItems {
		fmt.Fprintln(c.out, item)
	}
	fmt.Fprintln(c.out, rule)
}

func (c *CLI) menuShow(heading string, tasks []*models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "\nNo tasks found!")
		return
	}
	fmt.Fprintf(c.out, "\n--- %s (%d total) ---\n", heading, len(tasks))
	fmt.Fprintln(c.out, renderTable(tasks, c.plain))
}

func (c *CLI) menuAdd() error {
	fmt.Fprintln(c.out, "\n--- Add New Task ---")

	title, err := c.prompt("Enter task title: ")
	if err != nil {
		return err
	}
	if !validator.ValidateTitle(title) {
		fmt.Fprintln(c.out, Red("✗ Title cannot be empty!"))
		return nil
	}
	description, err := c.prompt("Enter task description: ")
	if err != nil {
		return err
	}
	priority, err := c.promptUntil("Enter priority (High/Medium/Low): ", validator.ValidatePriority,
		"✗ Invalid priority! Please enter High, Medium, or Low.")
	if err != nil {
		return err
	}
	due, err := c.promptUntil("Enter due date (YYYY-MM-DD): ", validator.ValidateDate,
		"✗ Invalid date format! Please use YYYY-MM-DD.")
	if err != nil {
		return err
	}

	t, err := c.App.AddTask(title, description, priority, due)
	if t == nil {
		fmt.Fprintln(c.out, Red("✗ "+err.Error()))
		return nil
	}
	return c.report(err, fmt.Sprintf("Task added successfully! (ID: %d)", t.ID))
}

func (c *CLI) menuByStatus() error {
	fmt.Fprintln(c.out, "\n--- Filter by Status ---")
	fmt.Fprintln(c.out, "1. Pending")
	fmt.Fprintln(c.out, "2. Complete")

	choice, err := c.prompt("Select status (1-2): ")
	if err != nil {
		return err
	}
	var status models.TaskStatus
	switch choice {
	case "1":
		status = models.Pending
	case "2":
		status = models.Complete
	default:
		fmt.Fprintln(c.out, Red("✗ Invalid choice!"))
		return nil
	}

	c.menuShow(status.String()+" Tasks", c.App.TasksByStatus(status))
	return nil
}

func (c *CLI) menuByPriority() error {
	fmt.Fprintln(c.out, "\n--- Filter by Priority ---")
	fmt.Fprintln(c.out, "1. High")
	fmt.Fprintln(c.out, "2. Medium")
	fmt.Fprintln(c.out, "3. Low")

	choice, err := c.prompt("Select priority (1-3): ")
	if err != nil {
		return err
	}
	var priority models.Priority
	switch choice {
	case "1":
		priority = models.High
	case "2":
		priority = models.Medium
	case "3":
		priority = models.Low
	default:
		fmt.Fprintln(c.out, Red("✗ Invalid choice!"))
		return nil
	}

	c.menuShow(priority.String()+" Priority Tasks", c.App.TasksByPriority(priority))
	return nil
}

func (c *CLI) menuSetStatus(complete bool) error {
	verb := "incomplete"
	if complete {
		verb = "complete"
	}

	id, ok, err := c.promptID(fmt.Sprintf("\nEnter task ID to mark as %s: ", verb))
	if err != nil || !ok {
		return err
	}

	if complete {
		_, err = c.App.CompleteTask(id)
	} else {
		_, err = c.App.ReopenTask(id)
	}
	if isNotFound(err) {
		fmt.Fprintln(c.out, Red(fmt.Sprintf("✗ Task with ID %d not found!", id)))
		return nil
	}
	return c.report(err, fmt.Sprintf("Task %d marked as %s!", id, verb))
}

func (c *CLI) menuEdit() error {
	id, ok, err := c.promptID("\nEnter task ID to edit: ")
	if err != nil || !ok {
		return err
	}
	t, err := c.App.Task(id)
	if err != nil {
		fmt.Fprintln(c.out, Red(fmt.Sprintf("✗ Task with ID %d not found!", id)))
		return nil
	}

	fmt.Fprintf(c.out, "\nEditing Task: %s\n", Bold(t.Title))
	fmt.Fprintln(c.out, "(Press Enter to keep current value)")

	var edit app.TaskEdit
	if edit.Title, err = c.promptOptional(fmt.Sprintf("Title [%s]: ", t.Title), nil, ""); err != nil {
		return err
	}
	if edit.Description, err = c.promptOptional(fmt.Sprintf("Description [%s]: ", t.Description), nil, ""); err != nil {
		return err
	}
	if edit.Priority, err = c.promptOptional(fmt.Sprintf("Priority [%s] (High/Medium/Low): ", t.Priority),
		validator.ValidatePriority, "✗ Invalid priority!"); err != nil {
		return err
	}
	if edit.DueDate, err = c.promptOptional(fmt.Sprintf("Due Date [%s] (YYYY-MM-DD): ", t.DueDate),
		validator.ValidateDate, "✗ Invalid date format!"); err != nil {
		return err
	}

	_, err = c.App.EditTask(id, edit)
	return c.report(err, fmt.Sprintf("Task %d updated successfully!", id))
}

func (c *CLI) menuDelete() error {
	id, ok, err := c.promptID("\nEnter task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	confirmed, err := c.confirm(fmt.Sprintf("Are you sure you want to delete task %d? (y/n): ", id))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(c.out, Yellow("✗ Deletion cancelled."))
		return nil
	}

	err = c.App.DeleteTask(id)
	if isNotFound(err) {
		fmt.Fprintln(c.out, Red(fmt.Sprintf("✗ Error: task with ID %d not found", id)))
		return nil
	}
	return c.report(err, fmt.Sprintf("Task %d deleted successfully!", id))
}

// promptID lists the tasks and reads an ID. ok is false when there is nothing
// to choose from or the answer is not a number.
func (c *CLI) promptID(label string) (id int, ok bool, err error) {
	c.menuShow("All Tasks", c.App.Tasks())
	if c.App.Count() == 0 {
		return 0, false, nil
	}

	answer, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(answer)
	if convErr != nil {
		fmt.Fprintln(c.out, Red("✗ Invalid ID! Please enter a number."))
		return 0, false, nil
	}
	return id, true, nil
}

// promptUntil repeats the prompt until valid accepts the answer.
func (c *CLI) promptUntil(label string, valid func(string) bool, complaint string) (string, error) {
	for {
		answer, err := c.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		fmt.Fprintln(c.out, Red(complaint))
	}
}

// promptOptional returns nil for an empty answer. Non-empty answers are
// re-prompted until valid accepts them; a nil valid accepts anything.
func (c *CLI) promptOptional(label string, valid func(string) bool, complaint string) (*string, error) {
	for {
		answer, err := c.prompt(label)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}
		if valid == nil || valid(answer) {
			return &answer, nil
		}
		fmt.Fprintln(c.out, Red(complaint))
	}
}

// endOfInput treats a closed input stream as the user leaving the menu.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
