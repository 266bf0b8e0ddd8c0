package reminder

import (
	"log"
	"sync"
	"time"
)

// Notifier schedules and cancels time-triggered alerts keyed by an opaque id.
// Scheduling an id that is already pending replaces the earlier trigger;
// cancelling an unknown id does nothing.
type Notifier interface {
	Schedule(id string, fireAt time.Time, title, body string) error
	Cancel(id string)
	Authorized() bool
}

type Alert struct {
	ID     string
	Title  string
	Body   string
	FireAt time.Time
}

// Local keeps pending alerts as in-process timers. Fired alerts are delivered
// on Alerts(); when nobody is reading, the alert is dropped and logged.
type Local struct {
	mu         sync.Mutex
	timers     map[string]*time.Timer
	alerts     chan Alert
	authorized bool
	now        func() time.Time
}

func NewLocal(authorized bool) *Local {
	return &Local{
		timers:     make(map[string]*time.Timer),
		alerts:     make(chan Alert, 16),
		authorized: authorized,
		now:        time.Now,
	}
}

func (l *Local) Authorized() bool {
	return l.authorized
}

func (l *Local) Alerts() <-chan Alert {
	return l.alerts
}

func (l *Local) Schedule(id string, fireAt time.Time, title, body string) error {
	if !l.authorized {
		return ErrNotAuthorized
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
	wait := fireAt.Sub(l.now())
	if wait <= 0 {
		// a trigger in the past never fires
		return nil
	}
	alert := Alert{ID: id, Title: title, Body: body, FireAt: fireAt}
	var timer *time.Timer
	timer = time.AfterFunc(wait, func() {
		l.mu.Lock()
		if l.timers[id] != timer {
			l.mu.Unlock()
			return
		}
		delete(l.timers, id)
		l.mu.Unlock()

		select {
		case l.alerts <- alert:
		default:
			log.Printf("reminder %s dropped: no reader", id)
		}
	})
	l.timers[id] = timer
	return nil
}

func (l *Local) Cancel(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.timers[id]; ok {
		t.Stop()
		delete(l.timers, id)
	}
}

// Pending reports the ids with an armed trigger.
func (l *Local) Pending() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]string, 0, len(l.timers))
	for id := range l.timers {
		ids = append(ids, id)
	}
	return ids
}

func (l *Local) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
}

// Nop accepts every request and never fires.
type Nop struct{}

func (Nop) Schedule(string, time.Time, string, string) error { return nil }
func (Nop) Cancel(string)                                     {}
func (Nop) Authorized() bool                                  { return true }
