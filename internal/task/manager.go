package task

import (
	"errors"
	"log"
	"strings"
	"time"

	"todoquiz/internal/reminder"
)

const ReminderTitle = "⏰ Reminder"

// ErrRemindersNotAuthorized is returned when a task asked for a reminder but
// notifications are turned off. The task is still saved, with Reminder cleared.
var ErrRemindersNotAuthorized = errors.New("notifications are off: enable them in the config to use reminders")

// Store persists the full task collection. LoadTasks reports false when
// nothing has been saved yet.
type Store interface {
	LoadTasks() ([]Task, bool, error)
	SaveTasks(tasks []Task) error
}

type Option func(*Manager)

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithSamples seeds the sample tasks when no collection was stored.
func WithSamples() Option {
	return func(m *Manager) { m.samples = true }
}

// Manager owns the in-memory task collection. Storage is write-through and
// best effort: failures are logged and the in-memory state stays authoritative.
type Manager struct {
	store    Store
	notifier reminder.Notifier
	now      func() time.Time
	samples  bool
	tasks    []Task
}

func NewManager(store Store, notifier reminder.Notifier, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	var ok bool
	m.tasks, ok = m.load()
	if !ok && m.samples {
		// Seeded samples are saved right away so their ids stay stable.
		m.tasks = Samples(m.now())
		m.persist()
	}
	return m
}

// load reports false when there is no usable stored collection.
func (m *Manager) load() ([]Task, bool) {
	tasks, ok, err := m.store.LoadTasks()
	if err != nil {
		log.Printf("load tasks: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return tasks, true
}

func (m *Manager) persist() {
	if err := m.store.SaveTasks(m.tasks); err != nil {
		log.Printf("save tasks: %v", err)
	}
}

func (m *Manager) Tasks() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

func (m *Manager) Len() int { return len(m.tasks) }

func (m *Manager) Get(id string) (Task, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.tasks[i], true
	}
	return Task{}, false
}

func (m *Manager) indexOf(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) RemindersAllowed() bool {
	return m.notifier.Authorized()
}

func (m *Manager) checkReminder(t *Task) error {
	if t.Reminder && !m.notifier.Authorized() {
		t.Reminder = false
		return ErrRemindersNotAuthorized
	}
	return nil
}

func (m *Manager) schedule(t Task) {
	if !t.Reminder || t.Done {
		return
	}
	if err := m.notifier.Schedule(t.ID, t.Due, ReminderTitle, t.Title); err != nil {
		log.Printf("schedule reminder %s: %v", t.ID, err)
	}
}

// Add appends t. A task whose id is already present is updated instead.
func (m *Manager) Add(t Task) error {
	if m.indexOf(t.ID) >= 0 {
		return m.Update(t)
	}
	err := m.checkReminder(&t)
	m.tasks = append(m.tasks, t)
	m.schedule(t)
	m.persist()
	return err
}

// Update replaces the task with the same id, or adds it when there is none.
func (m *Manager) Update(t Task) error {
	i := m.indexOf(t.ID)
	if i < 0 {
		return m.Add(t)
	}
	err := m.checkReminder(&t)
	m.notifier.Cancel(t.ID)
	m.tasks[i] = t
	m.schedule(t)
	m.persist()
	return err
}

// Save applies the result of the detail screen.
func (m *Manager) Save(t Task) error {
	return m.Update(t)
}

// Delete removes the task with id. Unknown ids leave storage untouched.
func (m *Manager) Delete(id string) {
	m.DeleteAt(m.indexOf(id))
}

func (m *Manager) DeleteAt(index int) {
	if index < 0 || index >= len(m.tasks) {
		return
	}
	m.notifier.Cancel(m.tasks[index].ID)
	m.tasks = append(m.tasks[:index], m.tasks[index+1:]...)
	m.persist()
}

// ToggleComplete flips the done state. Reopening a task whose reminder cannot
// be scheduled clears the flag and returns ErrRemindersNotAuthorized.
func (m *Manager) ToggleComplete(id string) error {
	i := m.indexOf(id)
	if i < 0 {
		return nil
	}
	t := &m.tasks[i]
	t.Done = !t.Done
	var err error
	if t.Done {
		m.notifier.Cancel(t.ID)
	} else {
		err = m.checkReminder(t)
		m.schedule(*t)
	}
	m.persist()
	return err
}

// RestoreReminders re-arms reminders for every pending task that wants one.
func (m *Manager) RestoreReminders() {
	if !m.notifier.Authorized() {
		return
	}
	for _, t := range m.tasks {
		m.schedule(t)
	}
}

func (m *Manager) FilterCategory(c Category) []Task {
	var out []Task
	for _, t := range m.tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Search matches q case-insensitively against title, notes and category name.
func (m *Manager) Search(q string) []Task {
	q = strings.ToLower(q)
	if q == "" {
		return m.Tasks()
	}
	var out []Task
	for _, t := range m.tasks {
		if t.matches(q) {
			out = append(out, t)
		}
	}
	return out
}
