package service

import (
	"context"
	"strconv"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// DefaultQuestionsPerPage is the page size used when none is configured.
const DefaultQuestionsPerPage = 10

// QuestionService defines the catalogue operations: categories, listing,
// search, creation and deletion of questions.
type QuestionService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	GetQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error)
	SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) error
	DeleteQuestion(ctx context.Context, id int64) error
}

type questionService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	tx         domain.TransactionManager
	validator  *validation.Validator
	perPage    int
}

// NewQuestionService creates a new instance of questionService.
// perPage <= 0 selects DefaultQuestionsPerPage.
func NewQuestionService(
	questions domain.QuestionRepository,
	categories domain.CategoryRepository,
	tx domain.TransactionManager,
	perPage int,
) QuestionService {
	if perPage <= 0 {
		perPage = DefaultQuestionsPerPage
	}
	return &questionService{
		questions:  questions,
		categories: categories,
		tx:         tx,
		validator:  validation.NewValidator(),
		perPage:    perPage,
	}
}

// GetCategories fails with not found when the catalogue is empty.
func (s *questionService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to get categories", err)
	}
	if len(categories) == 0 {
		return nil, domain.NewNoCategoriesError()
	}

	byID := make(map[string]string, len(categories))
	for _, c := range categories {
		byID[strconv.FormatInt(c.ID, 10)] = c.Type
	}

	return &dto.CategoriesResponse{
		Success:         true,
		Categories:      byID,
		TotalCategories: len(categories),
	}, nil
}

// GetQuestions returns one page; pages past the end are empty, not errors.
func (s *questionService) GetQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to count questions", err)
	}

	// Compare page counts, not offsets: (page-1)*perPage overflows for huge pages.
	pages := (total + s.perPage - 1) / s.perPage
	var pageQuestions []*domain.Question
	if page-1 < pages {
		pageQuestions, err = s.questions.ListQuestions(ctx, (page-1)*s.perPage, s.perPage)
		if err != nil {
			return nil, domain.NewInternalError("failed to list questions", err)
		}
	}

	return &dto.QuestionListResponse{
		Questions:      dto.NewQuestionResponses(pageQuestions),
		TotalQuestions: total,
		Success:        true,
	}, nil
}

// GetQuestionsByCategory never fails on an empty or unknown category.
func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.QuestionListResponse, error) {
	questions, err := s.questions.GetQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get questions by category", err)
	}
	return listResponse(questions), nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string) (*dto.QuestionListResponse, error) {
	questions, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		return nil, domain.NewInternalError("failed to search questions", err)
	}
	return listResponse(questions), nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) error {
	if err := s.validator.ValidateCreateQuestionRequest(req); err != nil {
		return err
	}

	question := domain.NewQuestion(*req.Question, *req.Answer, int64(*req.Category), int(*req.Difficulty))
	if err := s.questions.SaveQuestion(ctx, question); err != nil {
		return domain.NewInternalError("failed to create question", err)
	}

	logger.Get().Info("Question created",
		zap.Int64("category", question.Category),
		zap.Int("difficulty", question.Difficulty),
	)
	return nil
}

// DeleteQuestion looks the question up and removes it in one transaction.
func (s *questionService) DeleteQuestion(ctx context.Context, id int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		question, err := s.questions.GetQuestionByID(ctx, id)
		if err != nil {
			return domain.NewInternalError("failed to get question", err)
		}
		if question == nil {
			return domain.NewQuestionNotFoundError(id)
		}
		if err := s.questions.DeleteQuestion(ctx, id); err != nil {
			return domain.NewInternalError("failed to delete question", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Get().Info("Question deleted", zap.Int64("question_id", id))
	return nil
}

func listResponse(questions []*domain.Question) *dto.QuestionListResponse {
	return &dto.QuestionListResponse{
		Questions:      dto.NewQuestionResponses(questions),
		TotalQuestions: len(questions),
		Success:        true,
	}
}
