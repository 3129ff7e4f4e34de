package services

import (
	"testing"
	"time"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionInput(categoryID uint, correct string) QuestionInput {
	return QuestionInput{
		QuestionText:  "What is 2+2?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "22",
		CorrectOption: correct,
		CategoryID:    categoryID,
	}
}

func TestCreateQuestionNormalizesCorrectOption(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)

	question, err := s.CreateQuestion(questionInput(category.ID, "  b "))
	require.NoError(t, err)
	assert.Equal(t, "B", question.CorrectOption)
	assert.True(t, question.Active)
}

func TestCreateQuestionRejectsBadCorrectOption(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)

	for _, bad := range []string{"E", "", "AB", "1"} {
		_, err := s.CreateQuestion(questionInput(category.ID, bad))
		require.Error(t, err, "correctOption %q should be rejected", bad)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	}
}

func TestCreateQuestionCategoryChecks(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	inactive := createTestCategory(t, db, "Closed", false)

	_, err := s.CreateQuestion(questionInput(999, "A"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = s.CreateQuestion(questionInput(inactive.ID, "A"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestGetQuestionsByCategoryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)

	base := time.Now().Add(-time.Hour)
	createTestQuestion(t, db, category.ID, "oldest", "A", base)
	createTestQuestion(t, db, category.ID, "middle", "B", base.Add(time.Minute))
	createTestQuestion(t, db, category.ID, "newest", "C", base.Add(2*time.Minute))

	page, err := s.GetQuestionsByCategory(category.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, "newest", page.Content[0].QuestionText)
	assert.Equal(t, "oldest", page.Content[2].QuestionText)
}

func TestGetQuestionsByCategoryPagination(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		createTestQuestion(t, db, category.ID, "q", "A", base.Add(time.Duration(i)*time.Minute))
	}

	page, err := s.GetQuestionsByCategory(category.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
}

func TestCreateQuestionAppearsExactlyOnceInListing(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)

	created, err := s.CreateQuestion(questionInput(category.ID, "a"))
	require.NoError(t, err)

	page, err := s.GetQuestionsByCategory(category.ID, 0, 10)
	require.NoError(t, err)

	seen := 0
	for _, q := range page.Content {
		if q.ID == created.ID {
			seen++
			assert.Equal(t, "A", q.CorrectOption)
		}
	}
	assert.Equal(t, 1, seen)
}

func TestDisableQuestionIsSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)
	question := createTestQuestion(t, db, category.ID, "q", "A", time.Now())

	require.NoError(t, s.DisableQuestion(question.ID))

	page, err := s.GetQuestionsByCategory(category.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	_, err = s.GetRandomQuestionsForQuiz(category.ID, 10)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// Direct lookup still resolves the disabled question.
	got, err := s.GetQuestion(question.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestDisableQuestionNotFound(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)

	err := s.DisableQuestion(12345)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetRandomQuestionsForQuiz(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)

	for i := 0; i < 10; i++ {
		createTestQuestion(t, db, category.ID, "q", "A", time.Now())
	}

	questions, err := s.GetRandomQuestionsForQuiz(category.ID, 5)
	require.NoError(t, err)
	require.Len(t, questions, 5)

	seen := map[uint]bool{}
	for _, q := range questions {
		assert.False(t, seen[q.ID], "sampled question %d twice", q.ID)
		seen[q.ID] = true
		assert.Equal(t, category.ID, q.CategoryID)
		assert.True(t, q.Active)
	}
}

func TestGetRandomQuestionsLimitExceedsPool(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	category := createTestCategory(t, db, "Math", true)
	createTestQuestion(t, db, category.ID, "only one", "A", time.Now())

	questions, err := s.GetRandomQuestionsForQuiz(category.ID, 10)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestGetRandomQuestionsErrors(t *testing.T) {
	db := setupTestDB(t)
	s := NewQuestionService(db)
	empty := createTestCategory(t, db, "Empty", true)
	inactive := createTestCategory(t, db, "Closed", false)

	_, err := s.GetRandomQuestionsForQuiz(999, 10)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = s.GetRandomQuestionsForQuiz(inactive.ID, 10)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	_, err = s.GetRandomQuestionsForQuiz(empty.ID, 10)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
