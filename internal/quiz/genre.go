package quiz

import (
	"fmt"
	"strings"
)

// Genre is the personality bucket every answer counts towards. The order of
// the constants is the tie-break order when tallying.
type Genre int

const (
	Action Genre = iota
	Romance
	Comedy
	Horror
)

var genreGlyphs = [...]string{"🎬", "💕", "😂", "👻"}

func Genres() []Genre {
	return []Genre{Action, Romance, Comedy, Horror}
}

func (g Genre) Valid() bool {
	return g >= Action && g <= Horror
}

func (g Genre) Glyph() string {
	if !g.Valid() {
		return ""
	}
	return genreGlyphs[g]
}

func (g Genre) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Genre(%d)", int(g))
	}
	return descriptions[movieFraming][g].Name
}

type Mode int

const (
	Single Mode = iota
	Multiple
	Ranged
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	case Ranged:
		return "ranged"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type framing int

const (
	movieFraming framing = iota
	careerFraming
	foodFraming
)

func framingFor(title string) framing {
	switch {
	case strings.Contains(title, "Career"):
		return careerFraming
	case strings.Contains(title, "Food"):
		return foodFraming
	default:
		return movieFraming
	}
}

type Description struct {
	Name       string
	Definition string
}

// Describe resolves the display name and definition of g for the quiz titled title.
func Describe(g Genre, title string) Description {
	if !g.Valid() {
		return Description{}
	}
	return descriptions[framingFor(title)][g]
}

var descriptions = [3][4]Description{
	movieFraming: {
		Action:  {"Action", "You are bold and adventurous! You love excitement, thrills, and high-energy experiences. You're always ready for the next big challenge."},
		Romance: {"Romance", "You are warm and compassionate! You value deep connections, emotional experiences, and meaningful relationships with others."},
		Comedy:  {"Comedy", "You are lighthearted and fun! You bring joy to those around you, love to laugh, and don't take life too seriously."},
		Horror:  {"Horror", "You are mysterious and daring! You're drawn to the unknown, enjoy thrills, and aren't afraid of the dark side of life."},
	},
	careerFraming: {
		Action:  {"Entrepreneur 💼", "You're a natural ENTREPRENEUR! You thrive in fast-paced environments, love taking risks, and excel at building things from the ground up. Perfect careers: CEO, Startup Founder, Business Owner, Sales Executive."},
		Romance: {"Caregiver ❤️", "You're a born CAREGIVER! You find fulfillment in helping others and making a positive impact on people's lives. Perfect careers: Teacher, Nurse, Counselor, Social Worker, Therapist."},
		Comedy:  {"Creative 🎨", "You're a true CREATIVE! You express yourself through art, innovation, and imagination. You bring fresh ideas to everything you do. Perfect careers: Designer, Artist, Content Creator, Marketer, Entertainer."},
		Horror:  {"Analyst 🔬", "You're a dedicated ANALYST! You love solving complex problems through research, data, and logical thinking. Perfect careers: Scientist, Data Analyst, Researcher, Engineer, Detective."},
	},
	foodFraming: {
		Action:  {"Adventurous Eater 🌶️", "You're an ADVENTUROUS EATER! You love trying exotic flavors, spicy challenges, and unique food experiences. You're always seeking the next culinary thrill and aren't afraid to try anything once!"},
		Romance: {"Gourmet Foodie 🍷", "You're a GOURMET FOODIE! You appreciate fine dining, complex flavors, and culinary artistry. Wine pairings, sophisticated ingredients, and elegant presentations make your heart sing."},
		Comedy:  {"Comfort Food Lover 🍕", "You're a COMFORT FOOD LOVER! You find joy in classic, familiar favorites that bring warmth and happiness. Pizza, burgers, mac & cheese - the cozier the better!"},
		Horror:  {"Health Enthusiast 🥗", "You're a HEALTH ENTHUSIAST! You prioritize fresh, nutritious ingredients and clean eating. Organic salads, smoothie bowls, and wholesome meals fuel your healthy lifestyle."},
	},
}
