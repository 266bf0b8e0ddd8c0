package quiz

import (
	"errors"
	"testing"
	"time"
)

type memHistory struct {
	results []Result
	saved   bool
	saves   int
	loadErr error
	saveErr error
}

func (m *memHistory) LoadHistory() ([]Result, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	return append([]Result(nil), m.results...), m.saved, nil
}

func (m *memHistory) SaveHistory(results []Result) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.results = append([]Result(nil), results...)
	m.saved = true
	return nil
}

func (m *memHistory) ClearHistory() error {
	m.results = nil
	m.saved = false
	return nil
}

func result(title string, minute int) Result {
	return NewResult(title, Action, time.Date(2026, 1, 1, 10, minute, 0, 0, time.UTC))
}

func TestHistoryOrdering(t *testing.T) {
	store := &memHistory{saved: true, results: []Result{result("old", 0)}}
	h := NewHistory(store)

	r1, r2 := result("r1", 1), result("r2", 2)
	h.Append(r1)
	h.Append(r2)

	disk := store.results
	if len(disk) != 3 || disk[1] != r1 || disk[2] != r2 {
		t.Fatalf("unexpected disk order %+v", disk)
	}
	display := h.Display()
	if display[0] != r2 || display[1] != r1 || display[2].QuizTitle != "old" {
		t.Errorf("unexpected display order %+v", display)
	}
	if h.Records()[0].QuizTitle != "old" {
		t.Error("Records should be oldest first")
	}
}

func TestHistoryDeleteAtUsesDisplayIndex(t *testing.T) {
	store := &memHistory{}
	h := NewHistory(store)
	a, b, c := result("a", 1), result("b", 2), result("c", 3)
	h.Append(a)
	h.Append(b)
	h.Append(c)

	// display is c, b, a
	h.DeleteAt(0)
	if got := store.results; len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("unexpected disk after delete %+v", got)
	}
	h.DeleteAt(1)
	if got := store.results; len(got) != 1 || got[0] != b {
		t.Fatalf("unexpected disk after second delete %+v", got)
	}

	writes := store.saves
	h.DeleteAt(5)
	if store.saves != writes {
		t.Error("out of range delete must not write")
	}
}

func TestHistoryClear(t *testing.T) {
	store := &memHistory{}
	h := NewHistory(store)
	h.Append(result("a", 1))
	h.Clear()
	if h.Len() != 0 || store.saved {
		t.Errorf("expected empty history, got %d records, saved=%v", h.Len(), store.saved)
	}
}

func TestHistoryUnreadableIsEmpty(t *testing.T) {
	h := NewHistory(&memHistory{loadErr: errors.New("garbage")})
	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d", h.Len())
	}
}

func TestHistoryWriteFailureKeepsMemory(t *testing.T) {
	h := NewHistory(&memHistory{saveErr: errors.New("read-only")})
	h.Append(result("a", 1))
	if h.Len() != 1 {
		t.Error("in-memory history should keep the record")
	}
}

func TestEngineRecordsIntoHistory(t *testing.T) {
	store := &memHistory{}
	h := NewHistory(store)
	e := newTestEngine(singleQuiz("What's Your Dream Career?", 1), 2, h)
	_ = e.Start()
	_ = e.Submit(position(t, e, Comedy))

	if len(store.results) != 1 {
		t.Fatalf("expected one stored result, got %d", len(store.results))
	}
	if got := store.results[0].Result; got != "Creative 🎨" {
		t.Errorf("unexpected stored result %q", got)
	}
}
