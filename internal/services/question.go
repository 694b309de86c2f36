package services

import (
	"errors"
	"strings"

	"github.com/oyasr/trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db      *gorm.DB
	perPage int
}

func NewQuestionService(db *gorm.DB, perPage int) *QuestionService {
	return &QuestionService{db: db, perPage: perPage}
}

type QuestionPage struct {
	Questions []models.Question
	Total     int64
}

func (s *QuestionService) ListPage(page int) (*QuestionPage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, s.perPage)
	err := s.db.Order("id ASC").
		Limit(s.perPage).
		Offset((page - 1) * s.perPage).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}

	return &QuestionPage{Questions: questions, Total: total}, nil
}

// Search matches the term as a case-insensitive substring of the question
// text. An empty result is not an error.
func (s *QuestionService) Search(term string) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("LOWER(question) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) ByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}

func (s *QuestionService) Create(question, answer string, difficulty int, categoryID uint) (*models.Question, error) {
	q := models.Question{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
		CategoryID: categoryID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&q).Error
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var q models.Question
		if err := tx.First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&q).Error
	})
}
