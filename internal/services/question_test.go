package services_test

import (
	"testing"

	"github.com/oyasr/trivia-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPage(t *testing.T) {
	db := setupDB(t)
	seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	page1, err := svc.ListPage(1)
	require.NoError(t, err)
	assert.Len(t, page1.Questions, 10)
	assert.EqualValues(t, 12, page1.Total)

	page2, err := svc.ListPage(2)
	require.NoError(t, err)
	assert.Len(t, page2.Questions, 2)
	assert.EqualValues(t, 12, page2.Total)

	_, err = svc.ListPage(3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListPageClampsInvalidPage(t *testing.T) {
	db := setupDB(t)
	seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	page, err := svc.ListPage(0)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 10)
}

func TestListPageEmptyTable(t *testing.T) {
	db := setupDB(t)
	svc := services.NewQuestionService(db, 10)

	_, err := svc.ListPage(1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSearchCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	// Seed text is uppercase; the lowercase term must still match.
	results, err := svc.Search("title")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Guernica", results[0].Answer)
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	db := setupDB(t)
	seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	results, err := svc.Search("xylophone")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestByCategory(t *testing.T) {
	db := setupDB(t)
	categories, _ := seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	science := categories[0].ID
	questions, err := svc.ByCategory(science)
	require.NoError(t, err)
	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Equal(t, science, q.CategoryID)
	}
}

func TestByCategoryUnknown(t *testing.T) {
	db := setupDB(t)
	seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	_, err := svc.ByCategory(999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCreateDeleteRoundTrip(t *testing.T) {
	db := setupDB(t)
	categories, _ := seedTrivia(t, db)
	svc := services.NewQuestionService(db, 10)

	created, err := svc.Create("What is the capital of France?", "Paris", 1, categories[2].ID)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	require.NoError(t, svc.Delete(created.ID))

	err = svc.Delete(created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteUnknown(t *testing.T) {
	db := setupDB(t)
	svc := services.NewQuestionService(db, 10)

	err := svc.Delete(12345)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
