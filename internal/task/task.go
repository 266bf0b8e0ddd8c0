package task

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Category int

const (
	Personal Category = iota
	Work
	Shopping
	Health
	Completed
)

var categoryNames = []string{"Personal", "Work", "Shopping", "Health", "Completed"}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Personal, Work, Shopping, Health, Completed}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) Valid() bool {
	return c >= Personal && c <= Completed
}

func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return Personal, fmt.Errorf("unknown category %q", name)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

const dueSoonWindow = 24 * time.Hour

type Task struct {
	ID       string
	Title    string
	Done     bool
	Due      time.Time
	Notes    sql.NullString
	Category Category
	Reminder bool
}

// New returns a task with a freshly generated id.
func New(title string, due time.Time, category Category) Task {
	return Task{
		ID:       uuid.NewString(),
		Title:    title,
		Due:      due,
		Category: category,
	}
}

// Equal reports whether both values describe the same task. Only the id counts.
func (t Task) Equal(o Task) bool {
	return t.ID == o.ID
}

func (t Task) OverdueAt(now time.Time) bool {
	return !t.Done && t.Due.Before(now)
}

func (t Task) DueSoonAt(now time.Time) bool {
	if t.Done {
		return false
	}
	return t.Due.After(now) && !t.Due.After(now.Add(dueSoonWindow))
}

func (t Task) Overdue() bool { return t.OverdueAt(time.Now()) }
func (t Task) DueSoon() bool { return t.DueSoonAt(time.Now()) }

// SetNotes stores v, treating blank text as no notes at all.
func (t *Task) SetNotes(v string) {
	if strings.TrimSpace(v) == "" {
		t.Notes = sql.NullString{}
		return
	}
	t.Notes = sql.NullString{String: v, Valid: true}
}

func (t Task) NotesText() string {
	if !t.Notes.Valid {
		return ""
	}
	return t.Notes.String
}

const shareDateLayout = "1/2/06, 3:04 PM"

func (t Task) ShareText() string {
	state := "Pending"
	if t.Done {
		state = "Complete"
	}
	text := fmt.Sprintf("📋 %s\n📅 %s\n🏷 %s\n✅ %s", t.Title, t.Due.Format(shareDateLayout), t.Category, state)
	if n := t.NotesText(); n != "" {
		text += "\n📝 " + n
	}
	return text
}

func (t Task) matches(q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if t.Notes.Valid && strings.Contains(strings.ToLower(t.Notes.String), q) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Category.String()), q)
}

// Samples is the curated list shown on first launch.
func Samples(now time.Time) []Task {
	mk := func(title string, done bool, due time.Time, notes string, c Category, reminder bool) Task {
		t := New(title, due, c)
		t.Done = done
		t.Reminder = reminder
		t.SetNotes(notes)
		return t
	}
	return []Task{
		mk("Review Swift documentation", false, now.Add(2*time.Hour), "Focus on Codable and UITableView sections.", Work, true),
		mk("Buy groceries for the week", false, now.AddDate(0, 0, 1), "Milk, eggs, bread, vegetables.", Shopping, false),
		mk("Morning run – 5 km", true, now.Add(-3*time.Hour), "Felt strong throughout.", Health, false),
		mk("Call Mum on her birthday", false, now.AddDate(0, 0, 3), "Send flowers too.", Personal, true),
		mk("Submit assignment on Moodle", false, now.AddDate(0, 0, -1), "Upload GitHub link. Check rubric first.", Work, true),
		mk("Drink 8 glasses of water", false, now, "", Health, false),
	}
}
