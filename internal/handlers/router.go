package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter wires middleware and routes. Panics recover to the fixed 500
// body and unknown routes get the fixed 404 body, so every response the API
// emits carries the {success, error, message} envelope on failure.
func NewRouter(logger *zap.Logger, category *CategoryHandler, question *QuestionHandler, quiz *QuizHandler) *gin.Engine {
	r := gin.New()

	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, err any) {
		abortWithError(c, http.StatusInternalServerError)
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound)
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/categories", category.ListCategories)
	r.GET("/categories/:id/questions", category.ListCategoryQuestions)

	r.GET("/questions", question.ListQuestions)
	r.POST("/questions", question.CreateQuestion)
	r.DELETE("/questions/:id", question.DeleteQuestion)
	r.POST("/questions/search", question.SearchQuestions)

	r.POST("/quizzes", quiz.NextQuestion)

	return r
}
