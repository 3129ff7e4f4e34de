package services

import (
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CreateCategory rejects duplicate names with an exact (case
// sensitive) match, so "News" and "news" are distinct categories.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	var existing models.Category
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, apperr.InvalidInput("Category name already exists")
	}

	category := models.Category{Name: name, Active: true}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("active = ?", true).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, apperr.NotFound("Category not found with id: %d", id)
	}
	return &category, nil
}

// ToggleCategoryStatus flips the active flag. Existing questions and
// notes are untouched; the flag only gates new content and new quiz
// sessions.
func (s *CategoryService) ToggleCategoryStatus(id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, id).Error; err != nil {
			return apperr.NotFound("Category not found with id: %d", id)
		}
		category.Active = !category.Active
		return tx.Model(&category).Update("active", category.Active).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}
