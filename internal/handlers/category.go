package handlers

import (
	"net/http"
	"strconv"

	"github.com/oyasr/trivia-api/internal/models"
	"github.com/oyasr/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		logger:          logger,
	}
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	TotalQuestions  int               `json:"total_questions"`
	Questions       []models.Question `json:"questions"`
	CurrentCategory *uint             `json:"current_category"`
}

// ListCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categories,
	})
}

// ListCategoryQuestions godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.questionService.ByCategory(uint(categoryID))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	current := uint(categoryID)
	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		TotalQuestions:  len(questions),
		Questions:       questions,
		CurrentCategory: &current,
	})
}
