package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
	"trivia-api/internal/util"

	"github.com/jmoiron/sqlx"
)

// Column aliases are quoted so Oracle returns lower-case names for sqlx.
const questionColumns = `id "id", question "question", answer "answer", category "category", difficulty "difficulty"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func (a *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, query string, args ...interface{}) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, err
	}
	return toDomainQuestions(rows), nil
}

// ListQuestions returns one page of questions ordered by ID.
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context, offset, limit int) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`
	questions, err := a.selectQuestions(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// CountQuestions returns the number of stored questions.
func (a *QuestionDatabaseAdapter) CountQuestions(ctx context.Context) (int, error) {
	exec := GetExecutor(ctx, a.db)
	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return total, nil
}

func (a *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]*domain.Question, error) {
	questions, err := a.selectQuestions(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	return questions, nil
}

// GetQuestionByID returns nil, nil if the question does not exist.
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	var row models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`
	if err := exec.GetContext(ctx, &row, exec.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id`
	questions, err := a.selectQuestions(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// SearchQuestions matches the question text only, never the answer.
func (a *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE ? ESCAPE '` + util.LikeEscapeChar + `' ORDER BY id`
	questions, err := a.selectQuestions(ctx, query, util.ContainsPattern(term))
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	exec := GetExecutor(ctx, a.db)
	row := toModelQuestion(question)
	query := `INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query), row.Question, row.Answer, row.Category, row.Difficulty); err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

func toDomainQuestion(q *models.Question) *domain.Question {
	return &domain.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}
