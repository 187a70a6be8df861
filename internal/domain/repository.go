package domain

import "context"

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListQuestions returns questions ordered by ID, skipping offset rows.
	ListQuestions(ctx context.Context, offset, limit int) ([]*Question, error)

	// CountQuestions returns the size of the corpus.
	CountQuestions(ctx context.Context) (int, error)

	// GetAllQuestions returns every question ordered by ID.
	GetAllQuestions(ctx context.Context) ([]*Question, error)

	// GetQuestionByID returns nil, nil when no question has that ID.
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// GetQuestionsByCategory returns the questions of one category ordered by ID.
	GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// SearchQuestions matches term case-insensitively against question text.
	SearchQuestions(ctx context.Context, term string) ([]*Question, error)

	SaveQuestion(ctx context.Context, question *Question) error
	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by ID.
	GetAllCategories(ctx context.Context) ([]*Category, error)

	// SaveCategory inserts a category with a caller-chosen ID.
	SaveCategory(ctx context.Context, category *Category) error
}

// TransactionManager runs fn inside a single database transaction.
// Repositories called with the ctx passed to fn join that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
