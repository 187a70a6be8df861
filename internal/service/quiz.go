package service

import (
	"context"
	"math/rand"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// QuizService serves quiz questions. It keeps no session state: callers
// send every question id they have already been asked.
type QuizService interface {
	NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// PickFunc returns a uniformly distributed index in [0, n).
type PickFunc func(n int) int

type quizService struct {
	questions domain.QuestionRepository
	validator *validation.Validator
	pick      PickFunc
}

// NewQuizService creates a new instance of quizService.
// A nil pick uses math/rand.
func NewQuizService(questions domain.QuestionRepository, pick PickFunc) QuizService {
	if pick == nil {
		pick = rand.Intn
	}
	return &quizService{
		questions: questions,
		validator: validation.NewValidator(),
		pick:      pick,
	}
}

// NextQuestion picks one question not in previous_questions from the
// requested category (0 = all). A nil question means the quiz is over.
func (s *quizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if err := s.validator.ValidateQuizRequest(req); err != nil {
		return nil, err
	}
	categoryID := int64(*req.QuizCategory.ID)

	var (
		candidates []*domain.Question
		err        error
	)
	if categoryID == domain.AllCategories {
		candidates, err = s.questions.GetAllQuestions(ctx)
	} else {
		candidates, err = s.questions.GetQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz questions", err)
	}

	remaining := domain.ExcludeQuestions(candidates, req.PreviousIDs())
	if len(remaining) == 0 {
		logger.Get().Debug("Quiz exhausted",
			zap.Int64("category", categoryID),
			zap.Int("previous", len(req.PreviousQuestions)),
		)
		return &dto.QuizResponse{Question: nil, Success: true}, nil
	}

	chosen := dto.NewQuestionResponse(remaining[s.pick(len(remaining))])
	return &dto.QuizResponse{Question: &chosen, Success: true}, nil
}
