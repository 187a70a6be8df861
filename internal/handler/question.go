package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles category and question HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category keyed by id. Responds 404 when there are none.
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *QuestionHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of questions (10 per page) and the total number of questions.
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Router /questions [get]
func (h *QuestionHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestions(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	if err := h.service.DeleteQuestion(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CreateQuestion godoc
// @Summary Create a question
// @Description All four fields are required; a missing field responds 422.
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "New question"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("invalid request body", err)
	}
	if err := h.service.CreateQuestion(c.UserContext(), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring match on the question text.
// @Tags questions
// @Accept json
// @Produce json
// @Param search body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("invalid request body", err)
	}
	resp, err := h.service.SearchQuestions(c.UserContext(), req.SearchTerm)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions of a category
// @Description Unknown or empty categories return an empty list.
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.QuestionListResponse
// @Router /categories/{id}/questions [get]
func (h *QuestionHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	resp, err := h.service.GetQuestionsByCategory(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
