package services

import (
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	TotalUsers             int64   `json:"totalUsers"`
	TotalQuestions         int64   `json:"totalQuestions"`
	TotalQuizAttempts      int64   `json:"totalQuizAttempts"`
	AverageScorePercentage float64 `json:"averageScorePercentage"`
}

// GetStats aggregates over the whole store. TotalQuestions counts
// disabled questions too, and the average is 0.0 when no attempts
// exist rather than NULL/NaN.
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Question{}).Count(&stats.TotalQuestions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.QuizAttempt{}).Count(&stats.TotalQuizAttempts).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&models.QuizAttempt{}).
		Select("COALESCE(AVG(percentage), 0)").
		Scan(&stats.AverageScorePercentage).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
