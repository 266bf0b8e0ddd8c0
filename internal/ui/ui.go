package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoquiz/internal/config"
	"todoquiz/internal/reminder"
	"todoquiz/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeSearch
)

// filterAll shows every category.
const filterAll task.Category = -1

type alertMsg reminder.Alert

type Model struct {
	manager    *task.Manager
	cfg        config.Config
	alerts     <-chan reminder.Alert
	now        func() time.Time
	copy       func(string) error
	cursor     int
	mode       mode
	input      textinput.Model
	status     string
	filter     task.Category
	query      string
	confirmDel bool
	pendingDel *task.Task
	form       *formState
}

// NewTodo builds the to-do list model. alerts may be nil.
func NewTodo(manager *task.Manager, cfg config.Config, alerts <-chan reminder.Alert) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		manager: manager,
		cfg:     cfg,
		alerts:  alerts,
		now:     time.Now,
		copy:    clipboard.WriteAll,
		input:   ti,
		mode:    modeList,
		filter:  parseFilter(cfg.DefaultFilter),
		status:  fmt.Sprintf("Press '%s' to add, '%s' to toggle, '%s' to delete.", cfg.Keys.Add, keyLabel(cfg.Keys.Toggle), cfg.Keys.Delete),
	}
	if !manager.RemindersAllowed() {
		m.status = "Notifications Off: reminders will not fire."
	}
	return m
}

func RunTodo(manager *task.Manager, cfg config.Config, alerts <-chan reminder.Alert) error {
	_, err := tea.NewProgram(NewTodo(manager, cfg, alerts)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return waitForAlert(m.alerts)
}

func waitForAlert(ch <-chan reminder.Alert) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-ch
		if !ok {
			return nil
		}
		return alertMsg(a)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alertMsg:
		m.status = fmt.Sprintf("%s: %s", msg.Title, msg.Body)
		return m, waitForAlert(m.alerts)
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateFormMode(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.mode == modeSearch {
			return m.updateSearchMode(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
	}
	return m, nil
}

// visible is the list as currently filtered and searched.
func (m Model) visible() []task.Task {
	tasks := m.manager.Search(m.query)
	if m.filter == filterAll {
		return tasks
	}
	return slices.DeleteFunc(tasks, func(t task.Task) bool { return t.Category != m.filter })
}

func (m Model) selected() (task.Task, bool) {
	tasks := m.visible()
	if len(tasks) == 0 {
		return task.Task{}, false
	}
	return tasks[clampCursor(m.cursor, len(tasks))], true
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	n := len(m.visible())
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, n)
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, n)
	case m.cfg.Keys.Add:
		category := task.Personal
		if m.filter != filterAll {
			category = m.filter
		}
		due := m.now().Add(time.Hour).Truncate(time.Minute)
		return m.startForm(task.Task{Due: due, Category: category}, true)
	case m.cfg.Keys.Edit:
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startForm(t, false)
	case m.cfg.Keys.Toggle:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		err := m.manager.ToggleComplete(t.ID)
		switch {
		case errors.Is(err, task.ErrRemindersNotAuthorized):
			m.status = "Reopened " + t.Title + ". Notifications Off: reminder not set"
		case t.Done:
			m.status = "Reopened " + t.Title
		default:
			m.status = "Completed " + t.Title
		}
		m.cursor = clampCursor(m.cursor, len(m.visible()))
	case m.cfg.Keys.Delete:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete \"%s\"? y/n", t.Title)
	case m.cfg.Keys.Detail:
		t, ok := m.selected()
		if !ok {
			m.status = "No tasks"
			return m, nil
		}
		m.status = detailLine(t, m.now())
	case m.cfg.Keys.Search:
		m.mode = modeSearch
		m.input.Placeholder = "search title, notes or category"
		m.input.SetValue(m.query)
		m.input.Focus()
		m.status = "Search: type to filter, enter to keep, esc to clear"
	case m.cfg.Keys.Category:
		m.filter = nextFilter(m.filter)
		m.cursor = 0
		m.status = "Showing " + filterLabel(m.filter)
	case m.cfg.Keys.Share:
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.copy(t.ShareText()); err != nil {
			m.status = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied \"" + t.Title + "\" to clipboard"
	}
	return m, nil
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.query = ""
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Search cleared"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.mode = modeList
		m.input.Blur()
		m.status = fmt.Sprintf("%d matching", len(m.visible()))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.query = strings.TrimSpace(m.input.Value())
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	return m, cmd
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", "esc":
		m.status = "Delete cancelled"
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			break
		}
		m.manager.Delete(m.pendingDel.ID)
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.status = "Deleted " + m.pendingDel.Title
	default:
		return m, nil
	}
	m.confirmDel = false
	m.pendingDel = nil
	return m, nil
}

func (m Model) startForm(t task.Task, isNew bool) (tea.Model, tea.Cmd) {
	m.form = newFormState(t, isNew)
	m.input.SetValue(m.form.currentValue())
	m.input.Placeholder = m.form.currentLabel()
	m.input.Focus()
	m.mode = modeForm
	m.status = m.formPrompt()
	return m, nil
}

func (m Model) updateFormMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.form = nil
		m.mode = modeList
		m.input.Blur()
		m.input.SetValue("")
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "down":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index+1, len(formFields))
	case "shift+tab", "up":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index-1, len(formFields))
	case m.cfg.Keys.Confirm, "enter":
		m.form.setCurrentValue(m.input.Value())
		if m.form.index >= len(formFields)-1 {
			return m.saveForm()
		}
		m.form.index++
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.input.SetValue(m.form.currentValue())
	m.input.Placeholder = m.form.currentLabel()
	m.status = m.formPrompt()
	return m, nil
}

func (m Model) saveForm() (tea.Model, tea.Cmd) {
	t, err := m.form.build()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if m.form.isNew {
		err = m.manager.Add(t)
	} else {
		err = m.manager.Save(t)
	}
	m.form = nil
	m.mode = modeList
	m.input.Blur()
	m.input.SetValue("")

	switch {
	case errors.Is(err, task.ErrRemindersNotAuthorized):
		m.status = "Saved. Notifications Off: reminder not set"
	case err != nil:
		m.status = fmt.Sprintf("save failed: %v", err)
	default:
		m.status = "Saved " + t.Title
	}
	for i, v := range m.visible() {
		if v.ID == t.ID {
			m.cursor = i
			break
		}
	}
	return m, nil
}

func (m Model) formPrompt() string {
	verb := "Editing"
	if m.form.isNew {
		verb = "New task"
	}
	return fmt.Sprintf("%s: %s (field %d of %d). Enter to advance, tab to move, esc to cancel.",
		verb, m.form.currentLabel(), m.form.index+1, len(formFields))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo"))
	b.WriteString("  " + filterLabel(m.filter))
	if m.query != "" {
		b.WriteString(" matching \"" + m.query + "\"")
	}
	if !m.manager.RemindersAllowed() {
		b.WriteString("  " + warnStyle.Render("Notifications Off"))
	}
	b.WriteString("\n\n")

	tasks := m.visible()
	if len(tasks) == 0 {
		b.WriteString(fmt.Sprintf("No tasks here. Press '%s' to add one.\n", m.cfg.Keys.Add))
	} else {
		b.WriteString(m.renderTaskList(tasks))
	}

	b.WriteString("\n---\n")
	switch {
	case m.form != nil:
		b.WriteString(m.form.render())
		b.WriteString("\n")
		b.WriteString(m.input.View())
	case m.mode == modeSearch:
		b.WriteString("Search: ")
		b.WriteString(m.input.View())
	default:
		if t, ok := m.selected(); ok {
			b.WriteString(renderDetail(t, m.now()))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderHelp(m.cfg.Keys)))
	return b.String()
}

func (m Model) renderTaskList(tasks []task.Task) string {
	now := m.now()
	var b strings.Builder
	for i, t := range tasks {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}
		checkbox := "[ ]"
		if t.Done {
			checkbox = "[x]"
		}
		line := fmt.Sprintf("%s %s %s  %s  %s", cursor, checkbox, t.Title,
			categoryStyle.Render(t.Category.String()), dueLabel(t, now))
		b.WriteString(rowStyle(t, now).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s edit • %s toggle • %s delete • %s detail • %s search • %s category • %s share • %s quit",
		k.Up, k.Down, k.Add, k.Edit, keyLabel(k.Toggle), k.Delete, k.Detail, k.Search, k.Category, k.Share, k.Quit)
}

func parseFilter(v string) task.Category {
	c, err := task.ParseCategory(strings.TrimSpace(v))
	if err != nil {
		return filterAll
	}
	return c
}

func nextFilter(f task.Category) task.Category {
	if f == filterAll {
		return task.Categories()[0]
	}
	cats := task.Categories()
	i := slices.Index(cats, f)
	if i < 0 || i == len(cats)-1 {
		return filterAll
	}
	return cats[i+1]
}

func filterLabel(f task.Category) string {
	if f == filterAll {
		return "All"
	}
	return f.String()
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func clampCursor(cur, n int) int {
	if n <= 0 || cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
