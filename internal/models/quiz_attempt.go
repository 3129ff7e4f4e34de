package models

import "time"

// QuizAttempt records one scored quiz submission. Percentage is
// derived from Score and TotalQuestions at submission time and never
// recomputed afterwards.
type QuizAttempt struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"userId"`
	CategoryID         uint      `gorm:"not null;index" json:"categoryId"`
	Score              int       `gorm:"not null" json:"score"`
	TotalQuestions     int       `gorm:"not null" json:"totalQuestions"`
	Percentage         float64   `gorm:"not null" json:"percentage"`
	TimeTakenInSeconds int       `gorm:"not null;default:0" json:"timeTakenInSeconds"`
	AttemptedAt        time.Time `gorm:"index" json:"attemptedAt"`
}
