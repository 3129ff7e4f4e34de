package services

import (
	"regexp"
	"strings"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"gorm.io/gorm"
)

var correctOptionPattern = regexp.MustCompile(`^[ABCD]$`)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	QuestionText  string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	CategoryID    uint
}

// CreateQuestion stores a new active question. The correct option is
// normalized (trim + uppercase) before validation and storage.
func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	correct := strings.ToUpper(strings.TrimSpace(input.CorrectOption))
	if !correctOptionPattern.MatchString(correct) {
		return nil, apperr.InvalidInput("Correct option must be A, B, C, or D")
	}

	var category models.Category
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		return nil, apperr.NotFound("Category not found with id: %d", input.CategoryID)
	}
	if !category.Active {
		return nil, apperr.InvalidInput("Cannot add questions to inactive category")
	}

	question := models.Question{
		QuestionText:  input.QuestionText,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectOption: correct,
		CategoryID:    input.CategoryID,
		Active:        true,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// GetQuestionsByCategory lists active questions newest first.
func (s *QuestionService) GetQuestionsByCategory(categoryID uint, page, size int) (models.Page[models.Question], error) {
	var total int64
	if err := s.db.Model(&models.Question{}).
		Where("category_id = ? AND active = ?", categoryID, true).
		Count(&total).Error; err != nil {
		return models.Page[models.Question]{}, err
	}

	var questions []models.Question
	err := s.db.Where("category_id = ? AND active = ?", categoryID, true).
		Order("created_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&questions).Error
	if err != nil {
		return models.Page[models.Question]{}, err
	}
	return models.NewPage(questions, page, size, total), nil
}

// GetRandomQuestionsForQuiz samples up to limit distinct active
// questions for a quiz session, uniformly and without replacement,
// using the store's native random ordering. Each call may return a
// different set in a different order.
func (s *QuestionService) GetRandomQuestionsForQuiz(categoryID uint, limit int) ([]models.Question, error) {
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, apperr.NotFound("Category not found with id: %d", categoryID)
	}
	if !category.Active {
		return nil, apperr.InvalidInput("Category is not active")
	}

	var questions []models.Question
	err := s.db.Where("category_id = ? AND active = ?", categoryID, true).
		Order("RANDOM()").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, apperr.NotFound("No questions available for this category")
	}
	return questions, nil
}

// DisableQuestion soft-deletes: the question stops appearing in
// listings and quiz sampling but remains readable by id.
func (s *QuestionService) DisableQuestion(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, id).Error; err != nil {
			return apperr.NotFound("Question not found with id: %d", id)
		}
		return tx.Model(&question).Update("active", false).Error
	})
}

// GetQuestion returns a question by id regardless of its active flag.
func (s *QuestionService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, apperr.NotFound("Question not found with id: %d", id)
	}
	return &question, nil
}
