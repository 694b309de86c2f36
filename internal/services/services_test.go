package services_test

import (
	"fmt"
	"testing"

	"github.com/oyasr/trivia-api/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database named after the test so parallel
// tests never share state.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))
	return db
}

// seedTrivia inserts three categories and twelve questions, enough to span
// two pages at the default page size.
func seedTrivia(t *testing.T, db *gorm.DB) ([]models.Category, []models.Question) {
	t.Helper()

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "History"},
	}
	require.NoError(t, db.Create(&categories).Error)

	questions := []models.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Difficulty: 4, CategoryID: categories[0].ID},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Difficulty: 4, CategoryID: categories[0].ID},
		{Question: "Which element has the chemical symbol O?", Answer: "Oxygen", Difficulty: 1, CategoryID: categories[0].ID},
		{Question: "What planet is known as the red planet?", Answer: "Mars", Difficulty: 1, CategoryID: categories[0].ID},
		{Question: "Which Dutch graphic artist was a master of optical illusions?", Answer: "Escher", Difficulty: 1, CategoryID: categories[1].ID},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Difficulty: 3, CategoryID: categories[1].ID},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Difficulty: 4, CategoryID: categories[1].ID},
		{Question: "WHAT WAS THE TITLE OF PICASSO'S MURAL FOR THE 1937 WORLD'S FAIR?", Answer: "Guernica", Difficulty: 4, CategoryID: categories[1].ID},
		{Question: "Whose autobiography is entitled I Know Why the Caged Bird Sings?", Answer: "Maya Angelou", Difficulty: 2, CategoryID: categories[2].ID},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Difficulty: 1, CategoryID: categories[2].ID},
		{Question: "Which dynasty built the Great Wall of China?", Answer: "Qin", Difficulty: 3, CategoryID: categories[2].ID},
		{Question: "In which year did the Berlin Wall fall?", Answer: "1989", Difficulty: 2, CategoryID: categories[2].ID},
	}
	require.NoError(t, db.Create(&questions).Error)

	return categories, questions
}
