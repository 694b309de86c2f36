package services

import (
	"math/rand"

	"github.com/oyasr/trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// NextQuestion draws one random question from the eligible pool, excluding
// already-served ids. Category id 0 means any category. Returns nil when the
// pool is exhausted, which signals quiz completion to the client.
func (s *QuizService) NextQuestion(previous []uint, categoryID uint) (*models.Question, error) {
	query := s.db.Model(&models.Question{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var pool []models.Question
	if err := query.Find(&pool).Error; err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	return &pool[rand.Intn(len(pool))], nil
}
