package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"trivia-api/internal/domain"
)

// FlexInt decodes a JSON number or a JSON string holding an integer.
// Browser clients often send select values as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// QuestionResponse is the formatted question record exposed by the API.
// @Description Formatted question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse formats a domain question.
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses formats a list; the result is never nil so it
// encodes as [] rather than null.
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

// CategoriesResponse maps category id to its type label.
// @Description All categories
type CategoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      map[string]string `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

// QuestionListResponse is shared by listing, search and by-category routes.
// @Description A list of questions
type QuestionListResponse struct {
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Success        bool               `json:"success"`
}

// SuccessResponse acknowledges a mutation.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreateQuestionRequest fields are pointers so absent and null are detectable.
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Category   *FlexInt `json:"category" swaggertype:"integer"`
	Difficulty *FlexInt `json:"difficulty" swaggertype:"integer"`
}

// SearchRequest carries the search term; absent means "".
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory selects the quiz pool; id 0 means every category.
type QuizCategory struct {
	ID   *FlexInt `json:"id" swaggertype:"integer"`
	Type string   `json:"type,omitempty"`
}

// QuizRequest asks for the next quiz question.
// @Description Request body for the next quiz question
type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// PreviousIDs returns previous_questions as plain ids.
func (r *QuizRequest) PreviousIDs() []int64 {
	ids := make([]int64, len(r.PreviousQuestions))
	for i, id := range r.PreviousQuestions {
		ids[i] = int64(id)
	}
	return ids
}

// QuizResponse carries the next question, or null when the quiz is over.
// @Description Next quiz question
type QuizResponse struct {
	Question *QuestionResponse `json:"question"`
	Success  bool              `json:"success"`
}

// ErrorResponse is the error envelope for every failed request.
// @Description Error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
