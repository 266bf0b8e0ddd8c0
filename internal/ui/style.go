package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"todoquiz/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dueSoonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	plainStyle    = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func rowStyle(t task.Task, now time.Time) lipgloss.Style {
	switch {
	case t.Done:
		return doneStyle
	case t.OverdueAt(now):
		return overdueStyle
	case t.DueSoonAt(now):
		return dueSoonStyle
	}
	return plainStyle
}

// dueLabel describes the due date relative to now, flagging overdue and
// due-soon tasks.
func dueLabel(t task.Task, now time.Time) string {
	rel := humanize.RelTime(t.Due, now, "ago", "from now")
	switch {
	case t.OverdueAt(now):
		return "overdue " + rel
	case t.DueSoonAt(now):
		return "due soon, " + rel
	}
	return "due " + rel
}

func statusLabel(t task.Task) string {
	if t.Done {
		return "complete"
	}
	return "pending"
}

func detailLine(t task.Task, now time.Time) string {
	info := fmt.Sprintf("%s • %s • %s • %s", t.Title, t.Category, statusLabel(t), dueLabel(t, now))
	if t.Reminder {
		info += " • reminder"
	}
	if n := t.NotesText(); n != "" {
		info += " • notes:" + n
	}
	return info
}

func renderDetail(t task.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString("Details\n")
	b.WriteString(fmt.Sprintf("Title    : %s\n", t.Title))
	b.WriteString(fmt.Sprintf("Due      : %s (%s)\n", t.Due.Format(dueLayout), dueLabel(t, now)))
	b.WriteString(fmt.Sprintf("Category : %s\n", t.Category))
	b.WriteString(fmt.Sprintf("Status   : %s\n", statusLabel(t)))
	b.WriteString(fmt.Sprintf("Reminder : %s\n", boolToYN(t.Reminder)))
	b.WriteString(fmt.Sprintf("Notes    : %s\n", emptyPlaceholder(t.NotesText())))
	return b.String()
}

func emptyPlaceholder(v string) string {
	if strings.TrimSpace(v) == "" {
		return "(empty)"
	}
	return v
}
