package handlers

import (
	"net/http"
	"strconv"

	"github.com/oyasr/trivia-api/internal/models"
	"github.com/oyasr/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	logger          *zap.Logger
}

func NewQuestionHandler(questionService *services.QuestionService, categoryService *services.CategoryService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		logger:          logger,
	}
}

type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"required"`
	Category   uint   `json:"category" binding:"required"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuestionListResponse struct {
	Success         bool              `json:"success"`
	TotalQuestions  int64             `json:"total_questions"`
	Questions       []models.Question `json:"questions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *uint             `json:"current_category"`
}

type SearchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *uint             `json:"current_category"`
}

type QuestionIDResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// ListQuestions godoc
// @Summary      List questions, paginated
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionListResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.questionService.ListPage(page)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, QuestionListResponse{
		Success:         true,
		TotalQuestions:  result.Total,
		Questions:       result.Questions,
		Categories:      categories,
		CurrentCategory: nil,
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} QuestionIDResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// required on Difficulty and Category also rejects explicit zeroes.
		abortWithError(c, http.StatusBadRequest)
		return
	}

	question, err := h.questionService.Create(req.Question, req.Answer, req.Difficulty, req.Category)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, QuestionIDResponse{
		Success: true,
		ID:      question.ID,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionIDResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	if err := h.questionService.Delete(uint(questionID)); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, QuestionIDResponse{
		Success: true,
		ID:      uint(questionID),
	})
}

// SearchQuestions godoc
// @Summary      Search questions by text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} SearchQuestionsResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	questions, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}
