package quiz

import (
	"errors"
	"math/rand/v2"
	"slices"
	"time"
)

var (
	ErrNotInProgress    = errors.New("quiz is not in progress")
	ErrInvalidSelection = errors.New("invalid selection for question")
	ErrNoQuestions      = errors.New("quiz has no questions")
)

type State int

const (
	NotStarted State = iota
	InProgress
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Recorder receives the result of every finished run.
type Recorder interface {
	Append(r Result)
}

// Presented is the question on screen with its answers in display order.
// Order[i] is the index in the original question of Answers[i].
type Presented struct {
	Number  int
	Total   int
	Text    string
	Mode    Mode
	Answers []Answer
	Order   []int
}

type EngineOption func(*Engine)

func WithRecorder(r Recorder) EngineOption {
	return func(e *Engine) { e.recorder = r }
}

func WithEngineClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// Engine runs a single play-through of a quiz.
type Engine struct {
	quiz     Quiz
	rng      *rand.Rand
	now      func() time.Time
	recorder Recorder

	state      State
	questions  []Question
	index      int
	current    Presented
	responses  []Genre
	timer      Countdown
	generation int
	result     Result
}

func NewEngine(q Quiz, rng *rand.Rand, opts ...EngineOption) *Engine {
	e := &Engine{
		quiz: q,
		rng:  rng,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSeededEngine builds an engine with a reproducible shuffle.
func NewSeededEngine(q Quiz, seed uint64, opts ...EngineOption) *Engine {
	return NewEngine(q, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts...)
}

func (e *Engine) Start() error {
	if len(e.quiz.Questions) == 0 {
		return ErrNoQuestions
	}
	e.questions = slices.Clone(e.quiz.Questions)
	e.rng.Shuffle(len(e.questions), func(i, j int) {
		e.questions[i], e.questions[j] = e.questions[j], e.questions[i]
	})
	e.responses = nil
	e.index = 0
	e.result = Result{}
	e.state = InProgress
	e.enter()
	return nil
}

func (e *Engine) enter() {
	q := e.questions[e.index]
	order := e.rng.Perm(len(q.Answers))
	answers := make([]Answer, len(order))
	for i, src := range order {
		answers[i] = q.Answers[src]
	}
	e.current = Presented{
		Number:  e.index + 1,
		Total:   len(e.questions),
		Text:    q.Text,
		Mode:    q.Mode,
		Answers: answers,
		Order:   order,
	}
	e.generation++
	e.timer.Arm(QuestionTime)
}

func (e *Engine) Title() string { return e.quiz.Title }

func (e *Engine) State() State { return e.state }

// Index is the zero-based position of the current question.
func (e *Engine) Index() int { return e.index }

// Generation changes every time a new question is entered or the run ends.
// Timer ticks stamped with an older generation must be dropped.
func (e *Engine) Generation() int { return e.generation }

func (e *Engine) Current() (Presented, bool) {
	if e.state != InProgress {
		return Presented{}, false
	}
	return e.current, true
}

func (e *Engine) Remaining() time.Duration { return e.timer.Remaining() }

func (e *Engine) Responses() []Genre { return slices.Clone(e.responses) }

// Submit records the answers at the given display positions and advances.
func (e *Engine) Submit(indices ...int) error {
	if e.state != InProgress {
		return ErrNotInProgress
	}
	picked, err := e.validate(indices)
	if err != nil {
		return err
	}
	for _, i := range picked {
		e.responses = append(e.responses, e.current.Answers[i].Genre)
	}
	e.advance()
	return nil
}

func (e *Engine) validate(indices []int) ([]int, error) {
	n := len(e.current.Answers)
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, ErrInvalidSelection
		}
	}
	switch e.current.Mode {
	case Single, Ranged:
		if len(indices) != 1 {
			return nil, ErrInvalidSelection
		}
		return indices, nil
	case Multiple:
		picked := slices.Clone(indices)
		slices.Sort(picked)
		if len(slices.Compact(slices.Clone(picked))) != len(picked) {
			return nil, ErrInvalidSelection
		}
		return picked, nil
	}
	return nil, ErrInvalidSelection
}

// Tick advances the countdown by one second. It reports true when the
// question timed out, in which case the engine has already moved on.
func (e *Engine) Tick() bool {
	if e.state != InProgress {
		return false
	}
	if !e.timer.Tick() {
		return false
	}
	e.advance()
	return true
}

// Timeout skips the current question without recording anything.
func (e *Engine) Timeout() error {
	if e.state != InProgress {
		return ErrNotInProgress
	}
	e.advance()
	return nil
}

func (e *Engine) advance() {
	e.timer.Stop()
	e.index++
	if e.index < len(e.questions) {
		e.enter()
		return
	}
	e.finish()
}

func (e *Engine) finish() {
	e.state = Finished
	e.generation++
	e.result = NewResult(e.quiz.Title, Winner(Tally(e.responses)), e.now())
	if e.recorder != nil {
		e.recorder.Append(e.result)
	}
}

// Cancel abandons the run. Nothing is recorded.
func (e *Engine) Cancel() {
	if e.state != InProgress {
		return
	}
	e.timer.Stop()
	e.responses = nil
	e.current = Presented{}
	e.state = Cancelled
	e.generation++
}

func (e *Engine) Result() (Result, bool) {
	if e.state != Finished {
		return Result{}, false
	}
	return e.result, true
}
