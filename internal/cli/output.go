package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/tiwariParth/go-task-manager/internal/models"
)

// Colour helpers for status lines. They honour color.NoColor at call time.
var (
	Bold   = color.New(color.Bold).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
)

const (
	titleWidth  = 24
	priorityCol = 2
	statusCol   = 4
)

var (
	colorBorder = lipgloss.Color("#3F4451")
	colorHeader = lipgloss.Color("#C678DD")
	colorHigh   = lipgloss.Color("#E06C75")
	colorMedium = lipgloss.Color("#E5C07B")
	colorLow    = lipgloss.Color("#61AFEF")
	colorDone   = lipgloss.Color("#98C379")

	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = cellStyle.Bold(true)
)

// renderTable lays tasks out as ID / Title / Priority / Due Date / Status.
func renderTable(tasks []*models.Task, plain bool) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		symbol := "○"
		if t.IsComplete() {
			symbol = "✓"
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			truncate(t.Title, titleWidth),
			t.Priority.String(),
			t.DueDate,
			symbol + " " + t.Status.String(),
		})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Priority", "Due Date", "Status").
		Rows(rows...)

	if plain {
		return tbl.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).String()
	}

	return tbl.
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Foreground(colorHeader)
			}
			t := tasks[row]
			switch {
			case col == priorityCol:
				return cellStyle.Foreground(priorityColor(t.Priority))
			case col == statusCol && t.IsComplete():
				return cellStyle.Foreground(colorDone)
			}
			return cellStyle
		}).String()
}

func priorityColor(p models.Priority) lipgloss.Color {
	switch p {
	case models.High:
		return colorHigh
	case models.Medium:
		return colorMedium
	default:
		return colorLow
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
