package main

import (
	"log"

	"github.com/oyasr/trivia-api/internal/config"
	"github.com/oyasr/trivia-api/internal/database"
	"github.com/oyasr/trivia-api/internal/handlers"
	"github.com/oyasr/trivia-api/internal/services"

	_ "github.com/oyasr/trivia-api/docs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     CRUD API serving trivia questions and categories for a quiz client
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using process environment")
	}
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database connected and migrated")

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db, cfg.QuestionsPerPage)
	quizService := services.NewQuizService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, logger)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger)

	r := handlers.NewRouter(logger, categoryHandler, questionHandler, quizHandler)

	logger.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
