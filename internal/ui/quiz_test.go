package ui

import (
	"strings"
	"testing"

	"todoquiz/internal/quiz"
)

type memHistory struct {
	results []quiz.Result
}

func (h *memHistory) LoadHistory() ([]quiz.Result, bool, error) {
	return append([]quiz.Result(nil), h.results...), h.results != nil, nil
}

func (h *memHistory) SaveHistory(results []quiz.Result) error {
	h.results = append([]quiz.Result{}, results...)
	return nil
}

func (h *memHistory) ClearHistory() error {
	h.results = nil
	return nil
}

func newTestQuiz(t *testing.T) (QuizModel, *quiz.History) {
	t.Helper()
	h := quiz.NewHistory(&memHistory{})
	m := NewQuiz(h, testConfig(t), func(q quiz.Quiz) *quiz.Engine {
		return quiz.NewSeededEngine(q, 7, quiz.WithRecorder(h))
	})
	return m, h
}

// answerCurrent submits the first answer whatever the question mode.
func answerCurrent(t *testing.T, m QuizModel) QuizModel {
	t.Helper()
	p, ok := m.engine.Current()
	if !ok {
		t.Fatal("no current question")
	}
	if p.Mode == quiz.Multiple {
		m = press(m, runes(" ")).(QuizModel)
	}
	return press(m, enter).(QuizModel)
}

func TestQuizPlayThrough(t *testing.T) {
	m, h := newTestQuiz(t)
	m = press(m, enter).(QuizModel)
	if m.screen != screenQuestion {
		t.Fatalf("expected question screen, got %d (%s)", m.screen, m.status)
	}
	if !strings.Contains(m.View(), "Question 1 of 4") {
		t.Errorf("unexpected view:\n%s", m.View())
	}

	for i := 0; i < 4; i++ {
		m = answerCurrent(t, m)
	}
	if m.screen != screenResult {
		t.Fatalf("expected result screen, got %d (%s)", m.screen, m.status)
	}
	if h.Len() != 1 {
		t.Fatalf("expected one recorded result, got %d", h.Len())
	}
	if !strings.Contains(m.View(), "You are") {
		t.Errorf("result view missing headline:\n%s", m.View())
	}

	m = press(m, enter).(QuizModel)
	if m.screen != screenMenu {
		t.Error("enter on result should go back to the menu")
	}
}

func TestQuizTimeoutAdvances(t *testing.T) {
	m, _ := newTestQuiz(t)
	m = press(m, enter).(QuizModel)
	gen := m.engine.Generation()

	for i := 0; i < int(quiz.QuestionTime.Seconds()); i++ {
		m = press(m, tickMsg{generation: m.engine.Generation()}).(QuizModel)
	}
	if m.engine.Index() != 1 || m.status != "Time's up!" {
		t.Fatalf("expected timeout onto question 2, index=%d status=%q", m.engine.Index(), m.status)
	}
	if len(m.engine.Responses()) != 0 {
		t.Error("a timed out question records nothing")
	}
	if m.engine.Generation() == gen {
		t.Error("generation should change on a new question")
	}
}

func TestQuizStaleTickIgnored(t *testing.T) {
	m, _ := newTestQuiz(t)
	m = press(m, enter).(QuizModel)
	stale := m.engine.Generation()
	m = answerCurrent(t, m)

	out, cmd := m.Update(tickMsg{generation: stale})
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
	if got := out.(QuizModel).engine.Remaining(); got != quiz.QuestionTime {
		t.Errorf("stale tick changed the countdown: %v", got)
	}
}

func TestQuizCancelRecordsNothing(t *testing.T) {
	m, h := newTestQuiz(t)
	m = press(m, enter).(QuizModel)
	m = answerCurrent(t, m)
	gen := m.engine.Generation()
	m = press(m, esc).(QuizModel)

	if m.screen != screenMenu || m.engine.State() != quiz.Cancelled {
		t.Fatalf("expected cancelled run back at the menu, state=%v", m.engine.State())
	}
	if h.Len() != 0 {
		t.Error("cancelled run must not be recorded")
	}
	if _, cmd := m.Update(tickMsg{generation: gen}); cmd != nil {
		t.Error("tick after cancel must be dropped")
	}
}

func TestQuizHistoryDeleteAndClear(t *testing.T) {
	m, h := newTestQuiz(t)
	for range 3 {
		m = press(m, enter).(QuizModel)
		for i := 0; i < 4; i++ {
			m = answerCurrent(t, m)
		}
		m = press(m, enter).(QuizModel)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 results, got %d", h.Len())
	}

	oldest := h.Records()[0]
	m = press(m, runes("h")).(QuizModel)
	if m.screen != screenHistory {
		t.Fatal("expected history screen")
	}
	m = press(m, runes("d")).(QuizModel)
	if h.Len() != 2 || h.Records()[0] != oldest {
		t.Errorf("delete should drop the newest result, have %d", h.Len())
	}

	m = press(m, runes("x"), runes("n")).(QuizModel)
	if h.Len() != 2 {
		t.Error("declined clear removed history")
	}
	m = press(m, runes("x"), runes("y")).(QuizModel)
	if h.Len() != 0 || !strings.Contains(m.View(), "No results yet") {
		t.Errorf("clear failed, %d results left", h.Len())
	}
}

func TestDigitAndSlider(t *testing.T) {
	if i, ok := digit("3", 4); !ok || i != 2 {
		t.Errorf("digit(3) = %d %v", i, ok)
	}
	if _, ok := digit("5", 4); ok {
		t.Error("digit beyond answers should fail")
	}
	if _, ok := digit("a", 4); ok {
		t.Error("non digit should fail")
	}
	if got := renderSlider(1, 3); got != "|───●───|" {
		t.Errorf("renderSlider = %q", got)
	}
}
