package quiz

import "time"

// Result is the record kept for one completed quiz run.
type Result struct {
	QuizTitle  string    `json:"quizTitle"`
	Result     string    `json:"result"`
	Definition string    `json:"resultDefinition"`
	Date       time.Time `json:"date"`
	Emoji      string    `json:"emoji"`
}

func NewResult(title string, g Genre, at time.Time) Result {
	d := Describe(g, title)
	return Result{
		QuizTitle:  title,
		Result:     d.Name,
		Definition: d.Definition,
		Date:       at,
		Emoji:      g.Glyph(),
	}
}

func (r Result) Headline() string {
	return "You are " + r.Result + "!"
}

// Tally counts responses per genre, indexed by Genre.
func Tally(responses []Genre) [4]int {
	var counts [4]int
	for _, g := range responses {
		if g.Valid() {
			counts[g]++
		}
	}
	return counts
}

// Winner returns the genre with the highest count. Ties go to the genre
// declared first, so an empty tally yields Action.
func Winner(counts [4]int) Genre {
	best := Action
	for _, g := range Genres() {
		if counts[g] > counts[best] {
			best = g
		}
	}
	return best
}
