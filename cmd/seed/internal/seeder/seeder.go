package seeder

import (
	"context"
	"fmt"
	"os"

	"trivia-api/internal/domain"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// SeedQuestion is one question entry in the seed file.
type SeedQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
}

// SeedCategory is a category together with its questions.
type SeedCategory struct {
	ID        int64          `yaml:"id"`
	Type      string         `yaml:"type"`
	Questions []SeedQuestion `yaml:"questions"`
}

// SeedFile is the root of the YAML seed document.
type SeedFile struct {
	Categories []SeedCategory `yaml:"categories"`
}

// Load reads and validates a seed file.
func Load(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*SeedFile, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	seen := make(map[int64]bool, len(file.Categories))
	for _, c := range file.Categories {
		if c.ID <= 0 || c.Type == "" {
			return nil, fmt.Errorf("category entries need a positive id and a type (got id=%d type=%q)", c.ID, c.Type)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate category id %d", c.ID)
		}
		seen[c.ID] = true
	}
	return &file, nil
}

// Result counts what Seeder.Apply inserted.
type Result struct {
	Categories int
	Questions  int
}

// Seeder writes a SeedFile through the repositories in one transaction.
type Seeder struct {
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	tx         domain.TransactionManager
	log        *zap.Logger
}

func New(categories domain.CategoryRepository, questions domain.QuestionRepository, tx domain.TransactionManager, log *zap.Logger) *Seeder {
	return &Seeder{categories: categories, questions: questions, tx: tx, log: log}
}

// Apply inserts missing categories (by id) and missing questions (by text
// within their category). Running it twice inserts nothing the second time.
func (s *Seeder) Apply(ctx context.Context, file *SeedFile) (Result, error) {
	var res Result
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		res = Result{}

		existing, err := s.categories.GetAllCategories(ctx)
		if err != nil {
			return err
		}
		known := make(map[int64]bool, len(existing))
		for _, c := range existing {
			known[c.ID] = true
		}

		for _, sc := range file.Categories {
			if !known[sc.ID] {
				if err := s.categories.SaveCategory(ctx, &domain.Category{ID: sc.ID, Type: sc.Type}); err != nil {
					return err
				}
				res.Categories++
				s.log.Info("Created category", zap.Int64("id", sc.ID), zap.String("type", sc.Type))
			}

			stored, err := s.questions.GetQuestionsByCategory(ctx, sc.ID)
			if err != nil {
				return err
			}
			have := make(map[string]bool, len(stored))
			for _, q := range stored {
				have[q.Question] = true
			}

			for _, sq := range sc.Questions {
				if have[sq.Question] {
					continue
				}
				if err := s.questions.SaveQuestion(ctx, domain.NewQuestion(sq.Question, sq.Answer, sc.ID, sq.Difficulty)); err != nil {
					return err
				}
				have[sq.Question] = true
				res.Questions++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
