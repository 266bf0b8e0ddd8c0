package quiz

type Answer struct {
	Text  string
	Genre Genre
}

type Question struct {
	Text    string
	Mode    Mode
	Answers []Answer
}

type Quiz struct {
	Title     string
	Questions []Question
}

// Catalog returns the built-in quizzes. Each call returns fresh slices.
func Catalog() []Quiz {
	return []Quiz{movieGenreQuiz(), careerQuiz(), foodQuiz()}
}

// Find looks a quiz up by exact title.
func Find(title string) (Quiz, bool) {
	for _, q := range Catalog() {
		if q.Title == title {
			return q, true
		}
	}
	return Quiz{}, false
}

func movieGenreQuiz() Quiz {
	return Quiz{
		Title: "What Movie Genre Are You?",
		Questions: []Question{
			{"What's your ideal Friday night?", Single, []Answer{
				{"Extreme sports or adventure", Action},
				{"Romantic dinner date", Romance},
				{"Comedy show with friends", Comedy},
				{"Watching scary movies", Horror},
			}},
			{"Which activities do you enjoy? (Select all that apply)", Multiple, []Answer{
				{"Rock climbing", Action},
				{"Writing poetry", Romance},
				{"Stand-up comedy", Comedy},
				{"Escape rooms", Horror},
			}},
			{"How much do you enjoy adrenaline rushes?", Ranged, []Answer{
				{"Not at all", Romance},
				{"A little bit", Comedy},
				{"Quite a bit", Horror},
				{"Absolutely love them!", Action},
			}},
			{"Pick your vacation destination:", Single, []Answer{
				{"Skydiving in New Zealand", Action},
				{"Paris, the city of love", Romance},
				{"Comedy festival in Edinburgh", Comedy},
				{"Haunted castle tour", Horror},
			}},
		},
	}
}

func careerQuiz() Quiz {
	return Quiz{
		Title: "What's Your Dream Career?",
		Questions: []Question{
			{"What motivates you most?", Single, []Answer{
				{"Challenges and competition", Action},
				{"Helping others succeed", Romance},
				{"Creativity and innovation", Comedy},
				{"Solving complex problems", Horror},
			}},
			{"Which work environments appeal to you? (Select all that apply)", Multiple, []Answer{
				{"Fast-paced startup office", Action},
				{"Community center or hospital", Romance},
				{"Creative design studio", Comedy},
				{"Research laboratory", Horror},
			}},
			{"How do you handle workplace stress?", Ranged, []Answer{
				{"Talk it through with team", Romance},
				{"Express through creativity", Comedy},
				{"Analyze data and strategize", Horror},
				{"Take bold decisive action", Action},
			}},
			{"What's your ideal work achievement?", Single, []Answer{
				{"Building a successful business", Action},
				{"Changing someone's life for better", Romance},
				{"Creating award-winning work", Comedy},
				{"Making a scientific breakthrough", Horror},
			}},
		},
	}
}

func foodQuiz() Quiz {
	return Quiz{
		Title: "What's Your Food Personality?",
		Questions: []Question{
			{"What's your go-to meal?", Single, []Answer{
				{"Spicy Thai curry", Action},
				{"Fine dining tasting menu", Romance},
				{"Classic pepperoni pizza", Comedy},
				{"Fresh organic salad", Horror},
			}},
			{"Which dining experiences excite you? (Select all that apply)", Multiple, []Answer{
				{"Exotic street food adventures", Action},
				{"Michelin-starred restaurants", Romance},
				{"Cozy comfort food diners", Comedy},
				{"Farm-to-table organic cafes", Horror},
			}},
			{"How adventurous is your palate?", Ranged, []Answer{
				{"Refined and elegant", Romance},
				{"Familiar and comforting", Comedy},
				{"Clean and nutritious", Horror},
				{"Daring and exotic", Action},
			}},
			{"Your dream food destination?", Single, []Answer{
				{"Street food tour in Bangkok", Action},
				{"Wine tasting in French vineyard", Romance},
				{"Pizza and pasta in Italy", Comedy},
				{"Organic farm retreat in California", Horror},
			}},
		},
	}
}
