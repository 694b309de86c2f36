package handlers

import (
	"net/http"

	"github.com/oyasr/trivia-api/internal/models"
	"github.com/oyasr/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizService *services.QuizService
	logger      *zap.Logger
}

func NewQuizHandler(quizService *services.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, logger: logger}
}

type QuizCategory struct {
	ID uint `json:"id"`
}

type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Get the next quiz question
// @Description  Returns a random question from the chosen category (id 0 for
// @Description  any) that is not in previous_questions. question is null when
// @Description  every eligible question has been served.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.QuizCategory == nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(req.PreviousQuestions, req.QuizCategory.ID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
