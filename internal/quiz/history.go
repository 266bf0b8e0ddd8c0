package quiz

import (
	"log"
	"slices"
)

// HistoryStore persists the result list oldest first. LoadHistory reports
// false when nothing has been saved.
type HistoryStore interface {
	LoadHistory() ([]Result, bool, error)
	SaveHistory(results []Result) error
	ClearHistory() error
}

// History keeps results in completion order and shows them newest first.
type History struct {
	store   HistoryStore
	records []Result
}

func NewHistory(store HistoryStore) *History {
	h := &History{store: store}
	h.Reload()
	return h
}

// Reload replaces the in-memory list with what is stored. Unreadable data
// counts as an empty history.
func (h *History) Reload() {
	records, ok, err := h.store.LoadHistory()
	if err != nil {
		log.Printf("load quiz history: %v", err)
	}
	if err != nil || !ok {
		records = nil
	}
	h.records = records
}

func (h *History) Append(r Result) {
	h.records = append(h.records, r)
	h.persist()
}

func (h *History) Len() int { return len(h.records) }

// Records returns the results oldest first, in storage order.
func (h *History) Records() []Result {
	return slices.Clone(h.records)
}

// Display returns the results newest first.
func (h *History) Display() []Result {
	out := slices.Clone(h.records)
	slices.Reverse(out)
	return out
}

// DeleteAt removes the entry at position i of Display().
func (h *History) DeleteAt(i int) {
	if i < 0 || i >= len(h.records) {
		return
	}
	at := len(h.records) - 1 - i
	h.records = slices.Delete(h.records, at, at+1)
	h.persist()
}

func (h *History) Clear() {
	h.records = nil
	if err := h.store.ClearHistory(); err != nil {
		log.Printf("clear quiz history: %v", err)
	}
}

func (h *History) persist() {
	if err := h.store.SaveHistory(h.records); err != nil {
		log.Printf("save quiz history: %v", err)
	}
}
