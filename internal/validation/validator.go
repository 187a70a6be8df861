package validation

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestionRequest requires all four fields to be present.
// Values are not range checked and category is not looked up.
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) error {
	var missing []string
	if req.Question == nil {
		missing = append(missing, "question")
	}
	if req.Answer == nil {
		missing = append(missing, "answer")
	}
	if req.Category == nil {
		missing = append(missing, "category")
	}
	if req.Difficulty == nil {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return domain.NewMissingFieldError(missing...)
	}
	return nil
}

// ValidateQuizRequest requires quiz_category with an id.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) error {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return domain.NewBadRequestError("quiz_category.id is required", nil)
	}
	return nil
}
