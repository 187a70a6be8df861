package database

import (
	"errors"
	"testing"

	"trivia-api/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupOracleMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, config.DriverOracle), mock
}

func TestOracleMigrationFiles(t *testing.T) {
	up, err := oracleMigrationFiles(migrationsFS, ".up.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"000001_create_categories.up.sql",
		"000002_create_questions.up.sql",
		"000003_create_questions_category_index.up.sql",
	}, up)

	down, err := oracleMigrationFiles(migrationsFS, ".down.sql")
	require.NoError(t, err)
	assert.Len(t, down, 3)
}

func TestMigrate_OracleUp(t *testing.T) {
	db, mock := setupOracleMock(t)

	mock.ExpectExec(`CREATE TABLE categories`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE questions`).WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))
	mock.ExpectExec(`CREATE INDEX idx_questions_category`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := Migrate(db, Up, zap.NewNop())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_OracleDownReversesOrder(t *testing.T) {
	db, mock := setupOracleMock(t)

	mock.ExpectExec(`DROP INDEX idx_questions_category`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP TABLE questions`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP TABLE categories`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := Migrate(db, Down, zap.NewNop())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_OracleFailure(t *testing.T) {
	db, mock := setupOracleMock(t)

	mock.ExpectExec(`CREATE TABLE categories`).WillReturnError(errors.New("ORA-01031: insufficient privileges"))

	err := Migrate(db, Up, zap.NewNop())

	assert.ErrorContains(t, err, "000001_create_categories.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_UnknownDriver(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)

	err = Migrate(sqlx.NewDb(mockDB, "sqlmock"), Up, zap.NewNop())
	assert.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{DB: config.DBConfig{Driver: "mysql"}})
	assert.ErrorContains(t, err, "unsupported database driver")
}
