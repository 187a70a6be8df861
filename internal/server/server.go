package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

// Handlers groups the route handlers the app serves.
type Handlers struct {
	Question *handler.QuestionHandler
	Quiz     *handler.QuizHandler
}

// New builds the fiber app: middleware, routes and error handling.
func New(cfg config.ServerConfig, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(recover.New())

	if cfg.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/categories", h.Question.GetCategories)
	app.Get("/categories/:id<int;min(0)>/questions", h.Question.GetQuestionsByCategory)

	app.Get("/questions", h.Question.GetQuestions)
	app.Post("/questions", h.Question.CreateQuestion)
	app.Post("/questions/search", h.Question.SearchQuestions)
	app.Delete("/questions/:id<int;min(0)>", h.Question.DeleteQuestion)

	app.Post("/quizzes", h.Quiz.PlayQuiz)

	return app
}
