package main

import (
	"context"
	"flag"
	"log"

	"trivia-api/cmd/seed/internal/seeder"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "", "seed file to load (defaults to seed.file from config)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	path := cfg.Seed.File
	if *file != "" {
		path = *file
	}

	data, err := seeder.Load(path)
	if err != nil {
		l.Fatal("Failed to load seed file", zap.String("file", path), zap.Error(err))
	}

	db, err := database.Open(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	s := seeder.New(
		repository.NewCategoryDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		l,
	)

	res, err := s.Apply(context.Background(), data)
	if err != nil {
		l.Fatal("Seeding failed", zap.Error(err))
	}
	l.Info("Seeding complete",
		zap.String("file", path),
		zap.Int("categories_created", res.Categories),
		zap.Int("questions_created", res.Questions))
}
