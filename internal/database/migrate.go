package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"trivia-api/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Direction selects which migration files are applied.
type Direction int

const (
	Up Direction = iota
	Down
)

// Migrate applies the embedded schema migrations for db's driver.
func Migrate(db *sqlx.DB, dir Direction, log *zap.Logger) error {
	switch db.DriverName() {
	case config.DriverPostgres:
		return migratePostgres(db, dir, log)
	case config.DriverOracle:
		return migrateOracle(db, dir, log)
	default:
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}
}

func migratePostgres(db *sqlx.DB, dir Direction, log *zap.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}

	driver, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if dir == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	log.Info("Migrations completed successfully", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// migrateOracle executes the embedded oracle scripts in filename order
// (reverse order for Down). go-ora runs one statement per Exec, so each
// file holds a single statement without a trailing semicolon.
func migrateOracle(db *sqlx.DB, dir Direction, log *zap.Logger) error {
	suffix := ".up.sql"
	if dir == Down {
		suffix = ".down.sql"
	}

	files, err := oracleMigrationFiles(migrationsFS, suffix)
	if err != nil {
		return err
	}
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}

	for _, name := range files {
		content, err := fs.ReadFile(migrationsFS, path.Join("migrations/oracle", name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		if _, err := db.Exec(strings.TrimSpace(string(content))); err != nil {
			// ORA-00955: name is already used by an existing object
			if dir == Up && strings.Contains(err.Error(), "ORA-00955") {
				log.Info("Skipping applied migration", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		log.Info("Executed migration", zap.String("file", name))
	}

	log.Info("Migrations completed successfully")
	return nil
}

func oracleMigrationFiles(fsys fs.FS, suffix string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "migrations/oracle")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}
