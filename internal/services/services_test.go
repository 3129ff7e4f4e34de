package services

import (
	"testing"
	"time"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Question{},
		&models.Notes{},
		&models.QuizAttempt{},
	))
	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string, active bool) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Active: true}
	require.NoError(t, db.Create(category).Error)
	if !active {
		require.NoError(t, db.Model(category).Update("active", false).Error)
		category.Active = false
	}
	return category
}

func createTestQuestion(t *testing.T, db *gorm.DB, categoryID uint, text, correct string, createdAt time.Time) *models.Question {
	t.Helper()
	question := &models.Question{
		QuestionText:  text,
		OptionA:       "option a",
		OptionB:       "option b",
		OptionC:       "option c",
		OptionD:       "option d",
		CorrectOption: correct,
		CategoryID:    categoryID,
		Active:        true,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, Password: "secret123", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}
