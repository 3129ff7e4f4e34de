package services

import (
	"strings"
	"time"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuizResult struct {
	Score              int     `json:"score"`
	TotalQuestions     int     `json:"totalQuestions"`
	Percentage         float64 `json:"percentage"`
	TimeTakenInSeconds int     `json:"timeTakenInSeconds"`
}

// SubmitQuiz grades a submission against the active question set of
// the category as it exists right now, which may differ from the set
// the client was shown. Answers for questions outside that set are
// ignored, unanswered questions score zero. The denominator is always
// the live active-set size. One attempt row is persisted per call;
// retakes are legitimate, so there is no dedup.
func (s *QuizService) SubmitQuiz(userID, categoryID uint, answers map[uint]string, timeTakenInSeconds int) (*QuizResult, error) {
	var result *QuizResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			return apperr.NotFound("Category not found with id: %d", categoryID)
		}
		if !category.Active {
			return apperr.InvalidInput("Category is not active")
		}

		var questions []models.Question
		if err := tx.Where("category_id = ? AND active = ?", categoryID, true).
			Find(&questions).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return apperr.NotFound("No questions available for this category")
		}

		score := 0
		for _, q := range questions {
			answer, ok := answers[q.ID]
			if !ok {
				continue
			}
			if normalizeOption(answer) == normalizeOption(q.CorrectOption) {
				score++
			}
		}

		total := len(questions)
		percentage := float64(score) / float64(total) * 100

		attempt := models.QuizAttempt{
			UserID:             userID,
			CategoryID:         categoryID,
			Score:              score,
			TotalQuestions:     total,
			Percentage:         percentage,
			TimeTakenInSeconds: timeTakenInSeconds,
			AttemptedAt:        time.Now(),
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		result = &QuizResult{
			Score:              score,
			TotalQuestions:     total,
			Percentage:         percentage,
			TimeTakenInSeconds: timeTakenInSeconds,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetQuizHistory lists the caller's own attempts, newest first. The
// user id must come from the authenticated identity, never from the
// client.
func (s *QuizService) GetQuizHistory(userID uint, page, size int) (models.Page[models.QuizAttempt], error) {
	var total int64
	if err := s.db.Model(&models.QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return models.Page[models.QuizAttempt]{}, err
	}

	var attempts []models.QuizAttempt
	err := s.db.Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&attempts).Error
	if err != nil {
		return models.Page[models.QuizAttempt]{}, err
	}
	return models.NewPage(attempts, page, size, total), nil
}

func normalizeOption(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
