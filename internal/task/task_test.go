package task

import (
	"strings"
	"testing"
	"time"
)

var refNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestEqualComparesIDOnly(t *testing.T) {
	a := New("Buy milk", refNow, Shopping)
	b := a
	b.Title = "Something else"
	b.Done = true
	b.Category = Work
	if !a.Equal(b) {
		t.Error("tasks with the same id should be equal")
	}

	c := New("Buy milk", refNow, Shopping)
	if a.Equal(c) {
		t.Error("tasks with different ids should not be equal")
	}
}

func TestNewGeneratesUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New("t", refNow, Personal).ID
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}

func TestDueStatus(t *testing.T) {
	cases := []struct {
		name    string
		due     time.Time
		done    bool
		overdue bool
		soon    bool
	}{
		{"past", refNow.Add(-time.Minute), false, true, false},
		{"past but done", refNow.Add(-time.Minute), true, false, false},
		{"exactly now", refNow, false, false, false},
		{"in one hour", refNow.Add(time.Hour), false, false, true},
		{"in one hour but done", refNow.Add(time.Hour), true, false, false},
		{"at the 24h edge", refNow.Add(24 * time.Hour), false, false, true},
		{"past the 24h edge", refNow.Add(24*time.Hour + time.Second), false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := New("t", tc.due, Personal)
			task.Done = tc.done
			if got := task.OverdueAt(refNow); got != tc.overdue {
				t.Errorf("OverdueAt = %v, want %v", got, tc.overdue)
			}
			if got := task.DueSoonAt(refNow); got != tc.soon {
				t.Errorf("DueSoonAt = %v, want %v", got, tc.soon)
			}
			if task.OverdueAt(refNow) && task.DueSoonAt(refNow) {
				t.Error("overdue and due soon at the same time")
			}
		})
	}
}

func TestBuyMilkIsDueSoon(t *testing.T) {
	task := New("Buy milk", refNow.Add(time.Hour), Shopping)
	task.Reminder = true
	if !task.DueSoonAt(refNow) {
		t.Error("expected due soon")
	}
	if task.OverdueAt(refNow) {
		t.Error("expected not overdue")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(strings.ToLower(c.String()))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCategory("chores"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestSetNotes(t *testing.T) {
	var task Task
	task.SetNotes("   ")
	if task.Notes.Valid {
		t.Error("blank notes should be absent")
	}
	task.SetNotes("eggs")
	if !task.Notes.Valid || task.NotesText() != "eggs" {
		t.Errorf("unexpected notes %+v", task.Notes)
	}
}

func TestShareText(t *testing.T) {
	task := New("Buy milk", time.Date(2026, 3, 10, 15, 4, 0, 0, time.UTC), Shopping)
	got := task.ShareText()
	want := "📋 Buy milk\n📅 3/10/26, 3:04 PM\n🏷 Shopping\n✅ Pending"
	if got != want {
		t.Errorf("ShareText = %q, want %q", got, want)
	}

	task.Done = true
	task.SetNotes("semi-skimmed")
	if !strings.HasSuffix(task.ShareText(), "✅ Complete\n📝 semi-skimmed") {
		t.Errorf("unexpected share text %q", task.ShareText())
	}
}

func TestSamples(t *testing.T) {
	samples := Samples(refNow)
	if len(samples) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(samples))
	}
	overdue := 0
	for _, s := range samples {
		if s.OverdueAt(refNow) {
			overdue++
		}
	}
	if overdue != 1 {
		t.Errorf("expected exactly one overdue sample, got %d", overdue)
	}
}
