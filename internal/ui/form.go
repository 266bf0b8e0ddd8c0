package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todoquiz/internal/task"
)

const dueLayout = "2006-01-02 15:04"

var formFields = []string{"title", "due (YYYY-MM-DD HH:MM)", "category", "notes", "reminder (y/n)"}

type formState struct {
	base     task.Task
	isNew    bool
	title    string
	due      string
	category string
	notes    string
	reminder string
	index    int
}

func newFormState(t task.Task, isNew bool) *formState {
	return &formState{
		base:     t,
		isNew:    isNew,
		title:    t.Title,
		due:      t.Due.Format(dueLayout),
		category: t.Category.String(),
		notes:    t.NotesText(),
		reminder: boolToYN(t.Reminder),
	}
}

func (fs formState) currentLabel() string {
	return formFields[fs.index]
}

func (fs formState) values() []string {
	return []string{fs.title, fs.due, fs.category, fs.notes, fs.reminder}
}

func (fs formState) currentValue() string {
	return fs.values()[fs.index]
}

func (fs *formState) setCurrentValue(v string) {
	switch fs.index {
	case 0:
		fs.title = v
	case 1:
		fs.due = v
	case 2:
		fs.category = v
	case 3:
		fs.notes = v
	case 4:
		fs.reminder = v
	}
}

// build applies the form onto the task being edited. New tasks get a fresh id.
func (fs formState) build() (task.Task, error) {
	title := strings.TrimSpace(fs.title)
	if title == "" {
		return task.Task{}, errors.New("title cannot be empty")
	}
	due, err := parseDue(fs.due)
	if err != nil {
		return task.Task{}, fmt.Errorf("due date invalid: %w", err)
	}
	category, err := task.ParseCategory(strings.TrimSpace(fs.category))
	if err != nil {
		return task.Task{}, err
	}

	t := fs.base
	if fs.isNew {
		t = task.New(title, due, category)
	}
	t.Title = title
	t.Due = due
	t.Category = category
	t.SetNotes(fs.notes)
	t.Reminder = parseYN(fs.reminder)
	return t, nil
}

func (fs formState) render() string {
	var b strings.Builder
	for i, name := range formFields {
		prefix := " "
		if i == fs.index {
			prefix = ">"
		}
		val := fs.values()[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-24s : %s\n", prefix, name, val))
	}
	return b.String()
}

func parseDue(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("a due date is required")
	}
	if t, err := time.ParseInLocation(dueLayout, v, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", v, time.Local)
}

func parseYN(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "y" || v == "yes" || v == "true" || v == "1"
}

func boolToYN(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
