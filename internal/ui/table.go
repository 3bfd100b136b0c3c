package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aminrms/cli-task-manager/internal/calendar"
	"github.com/aminrms/cli-task-manager/internal/store"
	"github.com/aminrms/cli-task-manager/internal/task"
)

// RenderTasks renders the collection as a numbered table. The number
// column is the 1-based index users pass to edit and delete; it shifts
// after every mutation, which is why callers always re-list first.
func RenderTasks(th Theme, cal calendar.Calendar, tasks []task.Task) string {
	if len(tasks) == 0 {
		return th.Muted.Render("No tasks found.")
	}

	headers := []string{"#", "Date", "Duration", "Task", "Description", "Status", "Priority", "Tags"}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			cal.Display(t.Date),
			t.Duration,
			t.Name,
			truncate(t.Description, 40),
			string(t.Status),
			string(t.Priority),
			task.JoinTags(t.Tags),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(th.Header.Width(widths[i] + 2).Render(h))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(th.Cell.Width(widths[i] + 2).Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStatistics renders the stats view.
func RenderStatistics(th Theme, s store.Statistics) string {
	var b strings.Builder
	b.WriteString(th.Title.Render("Statistics"))
	b.WriteString("\n\n")

	line := func(label string, value interface{}) {
		b.WriteString(fmt.Sprintf("  %-22s %v\n", label, value))
	}

	line("Total tasks:", s.Total)
	for _, st := range task.Statuses {
		line(fmt.Sprintf("%s:", st), s.ByStatus[st])
	}
	for _, p := range task.Priorities {
		line(fmt.Sprintf("%s priority:", p), s.ByPriority[p])
	}
	line("Today:", s.TodayCount)
	line("Tracked time:", task.FormatMinutes(s.TrackedMinutes))
	if s.Unparsed > 0 {
		line("Unparsed durations:", s.Unparsed)
	}

	b.WriteString("\n")
	b.WriteString(th.Muted.Render(fmt.Sprintf("  %s (%d bytes, %d backups)",
		s.File.Path, s.File.Size, s.File.BackupCount)))
	b.WriteString("\n")
	return b.String()
}

// RenderInfo renders the data-file summary.
func RenderInfo(th Theme, info store.Info) string {
	var b strings.Builder
	b.WriteString(th.Title.Render("Data file"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %-15s %s\n", "Path:", info.Path))
	b.WriteString(fmt.Sprintf("  %-15s %v\n", "Exists:", info.Exists))
	b.WriteString(fmt.Sprintf("  %-15s %d bytes\n", "Size:", info.Size))
	if info.LastModified != "" {
		b.WriteString(fmt.Sprintf("  %-15s %s\n", "Modified:", info.LastModified))
	}
	b.WriteString(fmt.Sprintf("  %-15s %d\n", "Tasks:", info.TaskCount))
	b.WriteString(fmt.Sprintf("  %-15s %d\n", "Backups:", info.BackupCount))
	return b.String()
}

// RenderWarnings renders non-fatal row warnings from a load or import.
func RenderWarnings(th Theme, warnings []store.RowWarning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(th.Warning.Render("warning: " + w.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
