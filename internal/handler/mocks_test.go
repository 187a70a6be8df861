package handler_test

import (
	"context"

	"trivia-api/internal/dto"
)

// --- Manual Mocks ---

// MockQuestionService
type MockQuestionService struct {
	GetCategoriesFunc          func(ctx context.Context) (*dto.CategoriesResponse, error)
	GetQuestionsFunc           func(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	GetQuestionsByCategoryFunc func(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error)
	SearchQuestionsFunc        func(ctx context.Context, term string) (*dto.QuestionListResponse, error)
	CreateQuestionFunc         func(ctx context.Context, req *dto.CreateQuestionRequest) error
	DeleteQuestionFunc         func(ctx context.Context, id int64) error
}

func (m *MockQuestionService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockQuestionService.GetCategoriesFunc not implemented")
}

func (m *MockQuestionService) GetQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if m.GetQuestionsFunc != nil {
		return m.GetQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.GetQuestionsFunc not implemented")
}

func (m *MockQuestionService) GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
	if m.GetQuestionsByCategoryFunc != nil {
		return m.GetQuestionsByCategoryFunc(ctx, categoryID)
	}
	panic("MockQuestionService.GetQuestionsByCategoryFunc not implemented")
}

func (m *MockQuestionService) SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) error {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64) error {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

// MockQuizService
type MockQuizService struct {
	NextQuestionFunc func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *MockQuizService) NextQuestion(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.NextQuestionFunc != nil {
		return m.NextQuestionFunc(ctx, req)
	}
	panic("MockQuizService.NextQuestionFunc not implemented")
}
