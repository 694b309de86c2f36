package services

import (
	"github.com/oyasr/trivia-api/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryMap returns all categories keyed by id. An empty map is not an
// error here; callers that require categories to exist use ListCategories.
func (s *CategoryService) CategoryMap() (map[uint]string, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}

	result := make(map[uint]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result, nil
}

func (s *CategoryService) ListCategories() (map[uint]string, error) {
	categories, err := s.CategoryMap()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return categories, nil
}
