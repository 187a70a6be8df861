package repository

import (
	"context"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAllCategories returns all categories ordered by ID
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	exec := GetExecutor(ctx, r.db)
	var rows []models.Category
	query := `SELECT id "id", type "type" FROM categories ORDER BY id`
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = &domain.Category{ID: rows[i].ID, Type: rows[i].Type}
	}
	return categories, nil
}

// SaveCategory persists a category under its own ID
func (r *CategoryDatabaseAdapter) SaveCategory(ctx context.Context, category *domain.Category) error {
	exec := GetExecutor(ctx, r.db)
	row := models.Category{ID: category.ID, Type: category.Type}
	query := `INSERT INTO categories (id, type) VALUES (?, ?)`
	if _, err := exec.ExecContext(ctx, exec.Rebind(query), row.ID, row.Type); err != nil {
		return fmt.Errorf("failed to save category %d: %w", category.ID, err)
	}
	return nil
}
