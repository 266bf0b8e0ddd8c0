package reminder

import (
	"errors"
	"sort"
	"testing"
	"time"
)

func TestLocalScheduleFires(t *testing.T) {
	l := NewLocal(true)
	defer l.Close()

	fireAt := time.Now().Add(20 * time.Millisecond)
	if err := l.Schedule("a", fireAt, "⏰ Reminder", "Buy milk"); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	select {
	case a := <-l.Alerts():
		if a.ID != "a" || a.Body != "Buy milk" {
			t.Errorf("unexpected alert %+v", a)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("alert did not fire")
	}
	if got := l.Pending(); len(got) != 0 {
		t.Errorf("expected no pending alerts, got %v", got)
	}
}

func TestLocalScheduleReplacesSameID(t *testing.T) {
	l := NewLocal(true)
	defer l.Close()

	if err := l.Schedule("a", time.Now().Add(time.Hour), "t", "first"); err != nil {
		t.Fatal(err)
	}
	if err := l.Schedule("a", time.Now().Add(2*time.Hour), "t", "second"); err != nil {
		t.Fatal(err)
	}
	if got := l.Pending(); len(got) != 1 {
		t.Fatalf("expected 1 pending alert, got %v", got)
	}
}

func TestLocalCancel(t *testing.T) {
	l := NewLocal(true)
	defer l.Close()

	_ = l.Schedule("a", time.Now().Add(time.Hour), "t", "a")
	_ = l.Schedule("b", time.Now().Add(time.Hour), "t", "b")
	l.Cancel("a")
	l.Cancel("missing")

	got := l.Pending()
	sort.Strings(got)
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("expected [b], got %v", got)
	}
}

func TestLocalPastTriggerIgnored(t *testing.T) {
	l := NewLocal(true)
	defer l.Close()

	if err := l.Schedule("a", time.Now().Add(-time.Minute), "t", "late"); err != nil {
		t.Fatal(err)
	}
	if got := l.Pending(); len(got) != 0 {
		t.Errorf("expected nothing pending, got %v", got)
	}
}

func TestLocalUnauthorized(t *testing.T) {
	l := NewLocal(false)
	defer l.Close()

	if l.Authorized() {
		t.Fatal("expected unauthorized notifier")
	}
	err := l.Schedule("a", time.Now().Add(time.Hour), "t", "b")
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("expected ErrNotAuthorized, got %v", err)
	}
}
