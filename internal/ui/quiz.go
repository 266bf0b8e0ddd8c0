package ui

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"todoquiz/internal/config"
	"todoquiz/internal/quiz"
)

type screen int

const (
	screenMenu screen = iota
	screenQuestion
	screenResult
	screenHistory
)

// tickMsg is stamped with the engine generation it was scheduled for.
type tickMsg struct {
	generation int
}

func tick(generation int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

type QuizModel struct {
	cfg          config.Config
	catalog      []quiz.Quiz
	history      *quiz.History
	newEngine    func(quiz.Quiz) *quiz.Engine
	engine       *quiz.Engine
	screen       screen
	cursor       int
	picked       map[int]bool
	slider       int
	confirmClear bool
	status       string
}

// NewQuiz builds the quiz runner. newEngine is called once per play-through.
func NewQuiz(history *quiz.History, cfg config.Config, newEngine func(quiz.Quiz) *quiz.Engine) QuizModel {
	return QuizModel{
		cfg:       cfg,
		catalog:   quiz.Catalog(),
		history:   history,
		newEngine: newEngine,
		screen:    screenMenu,
		picked:    map[int]bool{},
		status:    fmt.Sprintf("Pick a quiz and press enter. '%s' shows past results.", cfg.Keys.History),
	}
}

func RunQuiz(history *quiz.History, cfg config.Config) error {
	newEngine := func(q quiz.Quiz) *quiz.Engine {
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		return quiz.NewEngine(q, rng, quiz.WithRecorder(history))
	}
	_, err := tea.NewProgram(NewQuiz(history, cfg, newEngine)).Run()
	return err
}

func (m QuizModel) Init() tea.Cmd {
	return nil
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.screen != screenQuestion || m.engine == nil || msg.generation != m.engine.Generation() {
			return m, nil
		}
		if m.engine.Tick() {
			m.status = "Time's up!"
			return m.afterAdvance()
		}
		return m, tick(m.engine.Generation())
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			if m.engine != nil {
				m.engine.Cancel()
			}
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(key)
		case screenQuestion:
			return m.updateQuestion(key)
		case screenResult:
			return m.updateResult(key)
		case screenHistory:
			return m.updateHistory(key)
		}
	}
	return m, nil
}

func (m QuizModel) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, len(m.catalog))
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, len(m.catalog))
	case m.cfg.Keys.Confirm, "enter":
		if len(m.catalog) == 0 {
			return m, nil
		}
		return m.start(m.catalog[clampCursor(m.cursor, len(m.catalog))])
	case m.cfg.Keys.History:
		m.screen = screenHistory
		m.cursor = 0
		m.status = fmt.Sprintf("'%s' deletes a result, '%s' clears all, esc goes back.", m.cfg.Keys.Delete, m.cfg.Keys.Clear)
	}
	return m, nil
}

func (m QuizModel) start(q quiz.Quiz) (tea.Model, tea.Cmd) {
	e := m.newEngine(q)
	if err := e.Start(); err != nil {
		m.status = fmt.Sprintf("cannot start %s: %v", q.Title, err)
		return m, nil
	}
	m.engine = e
	m.screen = screenQuestion
	m.status = ""
	m.resetSelection()
	return m, tick(e.Generation())
}

func (m *QuizModel) resetSelection() {
	m.cursor = 0
	m.picked = map[int]bool{}
	m.slider = 0
	if p, ok := m.engine.Current(); ok && p.Mode == quiz.Ranged {
		m.slider = len(p.Answers) / 2
	}
}

func (m QuizModel) afterAdvance() (tea.Model, tea.Cmd) {
	if m.engine.State() == quiz.Finished {
		m.screen = screenResult
		m.cursor = 0
		return m, nil
	}
	m.resetSelection()
	return m, tick(m.engine.Generation())
}

func (m QuizModel) submit(indices ...int) (tea.Model, tea.Cmd) {
	if err := m.engine.Submit(indices...); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	return m.afterAdvance()
}

func (m QuizModel) updateQuestion(key string) (tea.Model, tea.Cmd) {
	p, ok := m.engine.Current()
	if !ok {
		return m, nil
	}
	if key == m.cfg.Keys.Cancel || key == "esc" {
		m.engine.Cancel()
		m.screen = screenMenu
		m.cursor = 0
		m.status = "Quiz cancelled, nothing recorded"
		return m, nil
	}
	n := len(p.Answers)

	switch p.Mode {
	case quiz.Single:
		switch key {
		case m.cfg.Keys.Down, "down":
			m.cursor = clampCursor(m.cursor+1, n)
		case m.cfg.Keys.Up, "up":
			m.cursor = clampCursor(m.cursor-1, n)
		case m.cfg.Keys.Confirm, "enter":
			return m.submit(m.cursor)
		default:
			if i, ok := digit(key, n); ok {
				return m.submit(i)
			}
		}
	case quiz.Multiple:
		switch key {
		case m.cfg.Keys.Down, "down":
			m.cursor = clampCursor(m.cursor+1, n)
		case m.cfg.Keys.Up, "up":
			m.cursor = clampCursor(m.cursor-1, n)
		case m.cfg.Keys.Toggle, "space":
			m.toggle(m.cursor)
		case m.cfg.Keys.Confirm, "enter":
			return m.submit(m.pickedIndices()...)
		default:
			if i, ok := digit(key, n); ok {
				m.toggle(i)
			}
		}
	case quiz.Ranged:
		switch key {
		case "left", m.cfg.Keys.Up, "up":
			m.slider = clampCursor(m.slider-1, n)
		case "right", m.cfg.Keys.Down, "down":
			m.slider = clampCursor(m.slider+1, n)
		case m.cfg.Keys.Confirm, "enter":
			return m.submit(m.slider)
		}
	}
	return m, nil
}

func (m *QuizModel) toggle(i int) {
	if m.picked[i] {
		delete(m.picked, i)
		return
	}
	m.picked[i] = true
}

func (m QuizModel) pickedIndices() []int {
	out := make([]int, 0, len(m.picked))
	for i := range m.picked {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

func (m QuizModel) updateResult(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.History:
		m.screen = screenHistory
		m.cursor = 0
	case m.cfg.Keys.Confirm, "enter", m.cfg.Keys.Cancel, "esc":
		m.screen = screenMenu
		m.cursor = 0
	}
	return m, nil
}

func (m QuizModel) updateHistory(key string) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		switch key {
		case "y", "Y":
			m.history.Clear()
			m.cursor = 0
			m.status = "History cleared"
		case "n", "N", "esc":
			m.status = "Clear cancelled"
		default:
			return m, nil
		}
		m.confirmClear = false
		return m, nil
	}

	n := m.history.Len()
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, n)
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, n)
	case m.cfg.Keys.Delete:
		if n == 0 {
			return m, nil
		}
		m.history.DeleteAt(m.cursor)
		m.cursor = clampCursor(m.cursor, m.history.Len())
		m.status = "Result deleted"
	case m.cfg.Keys.Clear:
		if n == 0 {
			return m, nil
		}
		m.confirmClear = true
		m.status = "Clear all history? y/n"
	case m.cfg.Keys.Cancel, "esc":
		m.screen = screenMenu
		m.cursor = 0
		m.status = ""
	}
	return m, nil
}

func (m QuizModel) View() string {
	var b strings.Builder
	switch m.screen {
	case screenMenu:
		b.WriteString(m.viewMenu())
	case screenQuestion:
		b.WriteString(m.viewQuestion())
	case screenResult:
		b.WriteString(m.viewResult())
	case screenHistory:
		b.WriteString(m.viewHistory())
	}
	b.WriteString("\n\n")
	b.WriteString(m.status)
	return b.String()
}

func (m QuizModel) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quizzes"))
	b.WriteString("\n\n")
	for i, q := range m.catalog {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%d questions)\n", cursor, q.Title, len(q.Questions)))
	}
	b.WriteString(fmt.Sprintf("\n%d results in history\n", m.history.Len()))
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s/%s move • enter start • %s history • %s quit",
		m.cfg.Keys.Up, m.cfg.Keys.Down, m.cfg.Keys.History, m.cfg.Keys.Quit)))
	return b.String()
}

func (m QuizModel) viewQuestion() string {
	p, ok := m.engine.Current()
	if !ok {
		return ""
	}
	var b strings.Builder
	secs := int(m.engine.Remaining() / time.Second)
	clock := fmt.Sprintf("⏱ %ds", secs)
	if secs <= 5 {
		clock = overdueStyle.Render(clock)
	}
	b.WriteString(titleStyle.Render(m.engine.Title()))
	b.WriteString(fmt.Sprintf("\nQuestion %d of %d  %s\n\n%s\n\n", p.Number, p.Total, clock, p.Text))

	switch p.Mode {
	case quiz.Single:
		for i, a := range p.Answers {
			b.WriteString(m.answerLine(i, "", a.Text))
		}
		b.WriteString(helpStyle.Render("\nenter or 1-" + strconv.Itoa(len(p.Answers)) + " to answer • esc cancel"))
	case quiz.Multiple:
		for i, a := range p.Answers {
			box := "[ ] "
			if m.picked[i] {
				box = "[x] "
			}
			b.WriteString(m.answerLine(i, box, a.Text))
		}
		b.WriteString(helpStyle.Render("\nspace or digits to pick • enter to submit • esc cancel"))
	case quiz.Ranged:
		b.WriteString(renderSlider(m.slider, len(p.Answers)))
		b.WriteString("\n")
		if len(p.Answers) > 0 {
			b.WriteString(selectedStyle.Render(p.Answers[m.slider].Text))
		}
		b.WriteString(helpStyle.Render("\n←/→ slide • enter to submit • esc cancel"))
	}
	return b.String()
}

func (m QuizModel) answerLine(i int, box, text string) string {
	line := fmt.Sprintf("%d. %s%s", i+1, box, text)
	if i == m.cursor {
		return "> " + selectedStyle.Render(line) + "\n"
	}
	return "  " + line + "\n"
}

func renderSlider(pos, n int) string {
	var b strings.Builder
	b.WriteString("|")
	for i := range n {
		if i == pos {
			b.WriteString("●")
		} else {
			b.WriteString("─")
		}
		if i < n-1 {
			b.WriteString("──")
		}
	}
	b.WriteString("|")
	return b.String()
}

func (m QuizModel) viewResult() string {
	r, ok := m.engine.Result()
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.QuizTitle))
	b.WriteString(fmt.Sprintf("\n\n%s %s\n\n%s\n\n", r.Emoji, selectedStyle.Render(r.Headline()), r.Definition))
	b.WriteString(helpStyle.Render(fmt.Sprintf("enter back to quizzes • %s history • %s quit", m.cfg.Keys.History, m.cfg.Keys.Quit)))
	return b.String()
}

func (m QuizModel) viewHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n\n")
	results := m.history.Display()
	if len(results) == 0 {
		b.WriteString("No results yet.\n")
	}
	for i, r := range results {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s  %s\n", cursor, r.Emoji, r.Result,
			categoryStyle.Render(r.QuizTitle), humanize.Time(r.Date)))
	}
	return b.String()
}

// digit maps "1".."9" to a zero-based index below n.
func digit(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	i := int(key[0] - '1')
	return i, i < n
}
