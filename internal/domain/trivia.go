package domain

// Category groups questions. Categories are seeded outside the API.
type Category struct {
	ID   int64
	Type string
}

// Question is a single trivia question.
// Category is expected to reference a Category ID but nothing enforces it.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a new, not yet persisted Question.
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// AllCategories is the quiz category id meaning "no category filter".
const AllCategories int64 = 0

// ExcludeQuestions returns the questions whose IDs are not in seen.
// Order of the remaining questions is preserved.
func ExcludeQuestions(questions []*Question, seen []int64) []*Question {
	if len(seen) == 0 {
		return questions
	}
	skip := make(map[int64]struct{}, len(seen))
	for _, id := range seen {
		skip[id] = struct{}{}
	}
	remaining := make([]*Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := skip[q.ID]; ok {
			continue
		}
		remaining = append(remaining, q)
	}
	return remaining
}
