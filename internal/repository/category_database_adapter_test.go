package repository

import (
	"context"
	"errors"
	"testing"

	"trivia-api/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetAllCategories(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"id", "type"}).
		AddRow(1, "Science").
		AddRow(2, "Art").
		AddRow(3, "Geography")
	mock.ExpectQuery(`SELECT (.+) FROM categories ORDER BY id`).WillReturnRows(rows)

	result, err := repo.GetAllCategories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, "Science", result[0].Type)
	assert.Equal(t, "Geography", result[2].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCategories_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT (.+) FROM categories`).WillReturnRows(sqlmock.NewRows([]string{"id", "type"}))

	result, err := repo.GetAllCategories(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllCategories_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT (.+) FROM categories`).WillReturnError(errors.New("db down"))

	result, err := repo.GetAllCategories(context.Background())

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO categories \(id, type\) VALUES \(\?, \?\)`).
		WithArgs(int64(6), "Sports").
		WillReturnResult(sqlmock.NewResult(6, 1))

	err := repo.SaveCategory(context.Background(), &domain.Category{ID: 6, Type: "Sports"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
