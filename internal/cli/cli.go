package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tiwariParth/go-task-manager/internal/app"
	"github.com/tiwariParth/go-task-manager/internal/models"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

const usage = "available commands: add, list, complete, incomplete, edit, delete, menu"

// CLI represents the command-line interface.
type CLI struct {
	App   *app.TodoApp
	in    *bufio.Reader
	out   io.Writer
	plain bool
}

// NewCLI initializes a new CLI reading answers from in and writing to out.
func NewCLI(todo *app.TodoApp, in io.Reader, out io.Writer) *CLI {
	return &CLI{App: todo, in: bufio.NewReader(in), out: out}
}

// SetPlain turns off colour in rendered tables.
func (c *CLI) SetPlain(plain bool) {
	c.plain = plain
}

// Run executes the CLI based on the provided arguments. Without a command it
// starts the interactive menu.
func (c *CLI) Run(args []string) error {
	if len(args) == 0 {
		return c.RunMenu()
	}

	switch args[0] {
	case "menu":
		return c.RunMenu()
	case "add":
		return c.add(args[1:])
	case "list":
		return c.list(args[1:])
	case "complete":
		return c.setStatus(args[1:], true)
	case "incomplete":
		return c.setStatus(args[1:], false)
	case "edit":
		return c.edit(args[1:])
	case "delete":
		return c.remove(args[1:])
	default:
		return fmt.Errorf("unknown command: %s (%s)", args[0], usage)
	}
}

func (c *CLI) add(args []string) error {
	fs := c.flagSet("add")
	title := fs.String("title", "", "task title (defaults to the remaining arguments)")
	desc := fs.String("desc", "", "task description")
	priority := fs.String("priority", "Medium", "High, Medium or Low")
	due := fs.String("due", "", "due date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" {
		*title = strings.Join(fs.Args(), " ")
	}

	t, err := c.App.AddTask(strings.TrimSpace(*title), strings.TrimSpace(*desc), strings.TrimSpace(*priority), strings.TrimSpace(*due))
	if t == nil {
		return err
	}
	return c.report(err, fmt.Sprintf("Task added successfully! (ID: %d) %s", t.ID, Bold(t.Title)))
}

func (c *CLI) list(args []string) error {
	fs := c.flagSet("list")
	status := fs.String("status", "", "only show Pending or Complete tasks")
	priority := fs.String("priority", "", "only show High, Medium or Low tasks")
	sortBy := fs.String("sort", "", `"due" sorts by due date`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var tasks []*models.Task
	switch {
	case *status != "":
		s, err := models.ParseStatus(capitalize(*status))
		if err != nil {
			return err
		}
		tasks = c.App.TasksByStatus(s)
	case *priority != "":
		p, err := models.ParsePriority(capitalize(*priority))
		if err != nil {
			return err
		}
		tasks = c.App.TasksByPriority(p)
	case *sortBy == "due":
		tasks = c.App.TasksByDueDate()
	case *sortBy != "":
		return fmt.Errorf("unknown sort key: %s", *sortBy)
	default:
		tasks = c.App.Tasks()
	}

	c.showTasks(tasks)
	return nil
}

func (c *CLI) setStatus(args []string, complete bool) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if complete {
		_, err = c.App.CompleteTask(id)
		return c.report(err, fmt.Sprintf("Task %d marked as complete!", id))
	}
	_, err = c.App.ReopenTask(id)
	return c.report(err, fmt.Sprintf("Task %d marked as incomplete!", id))
}

func (c *CLI) edit(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	fs := c.flagSet("edit")
	var edit app.TaskEdit
	fs.Func("title", "new title", setString(&edit.Title))
	fs.Func("desc", "new description", setString(&edit.Description))
	fs.Func("priority", "new priority: High, Medium or Low", setString(&edit.Priority))
	fs.Func("due", "new due date, YYYY-MM-DD", setString(&edit.DueDate))
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	_, err = c.App.EditTask(id, edit)
	return c.report(err, fmt.Sprintf("Task %d updated successfully!", id))
}

func (c *CLI) remove(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	fs := c.flagSet("delete")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if !*yes {
		ok, err := c.confirm(fmt.Sprintf("Are you sure you want to delete task %d? (y/n): ", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.out, Yellow("✗ Deletion cancelled."))
			return nil
		}
	}

	return c.report(c.App.DeleteTask(id), fmt.Sprintf("Task %d deleted successfully!", id))
}

// report prints the outcome of a mutation. A failed save is shown but is not
// returned: the change stays in memory and the session continues.
func (c *CLI) report(err error, success string) error {
	switch {
	case err == nil:
		fmt.Fprintln(c.out, Green("✓ "+success))
		fmt.Fprintln(c.out, Green("✓ Tasks saved successfully."))
	case errors.Is(err, app.ErrNotSaved):
		fmt.Fprintln(c.out, Green("✓ "+success))
		fmt.Fprintln(c.out, Red("✗ Error saving tasks."))
	default:
		return err
	}
	return nil
}

func (c *CLI) showTasks(tasks []*models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found.")
		return
	}
	fmt.Fprintln(c.out, renderTable(tasks, c.plain))
}

func (c *CLI) confirm(question string) (bool, error) {
	answer, err := c.prompt(question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// prompt prints label and returns the next trimmed input line.
func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func parseID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, errors.New("missing task ID")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %w", err)
	}
	return id, nil
}

// setString returns a flag setter that records the trimmed value and that the
// flag was given.
func setString(dst **string) func(string) error {
	return func(v string) error {
		v = strings.TrimSpace(v)
		*dst = &v
		return nil
	}
}

// isNotFound reports whether err means the requested task does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, task.ErrTaskNotFound)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
