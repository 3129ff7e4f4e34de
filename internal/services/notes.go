package services

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/Abhinav9193/Quiz-Application-Backend/internal/apperr"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/models"
	"github.com/Abhinav9193/Quiz-Application-Backend/internal/storage"

	"gorm.io/gorm"
)

const (
	maxNotesFileSize = 10 << 20 // 10 MiB
	pdfContentType   = "application/pdf"
	pdfExtension     = ".pdf"
)

type NotesService struct {
	db    *gorm.DB
	files *storage.FileStore
}

func NewNotesService(db *gorm.DB, files *storage.FileStore) *NotesService {
	return &NotesService{db: db, files: files}
}

// UploadNotes validates and stores a PDF upload. The checks run in a
// fixed order: file present, size, declared content type, extension,
// category existence, category active. The stored name is generated by
// the file store; the title is not deduplicated.
func (s *NotesService) UploadNotes(file *multipart.FileHeader, title string, categoryID uint) (*models.Notes, error) {
	if err := validatePDFFile(file); err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return nil, apperr.NotFound("Category not found with id: %d", categoryID)
	}
	if !category.Active {
		return nil, apperr.InvalidInput("Cannot upload notes to inactive category")
	}

	storedName, err := s.files.Save(file)
	if err != nil {
		return nil, apperr.FileUploadWrap(err, "Failed to save file")
	}

	notes := models.Notes{
		Title:      title,
		FileName:   file.Filename,
		FilePath:   storedName,
		CategoryID: categoryID,
		UploadedAt: time.Now(),
	}
	if err := s.db.Create(&notes).Error; err != nil {
		return nil, err
	}
	return &notes, nil
}

func validatePDFFile(file *multipart.FileHeader) error {
	if file == nil || file.Size == 0 {
		return apperr.FileUpload("File is required")
	}
	if file.Size > maxNotesFileSize {
		return apperr.FileUpload("File size exceeds 10MB limit")
	}
	if file.Header.Get("Content-Type") != pdfContentType {
		return apperr.FileUpload("Only PDF files are allowed")
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), pdfExtension) {
		return apperr.FileUpload("File must have .pdf extension")
	}
	return nil
}

func (s *NotesService) GetNotesByCategory(categoryID uint, page, size int) (models.Page[models.Notes], error) {
	var total int64
	if err := s.db.Model(&models.Notes{}).
		Where("category_id = ?", categoryID).
		Count(&total).Error; err != nil {
		return models.Page[models.Notes]{}, err
	}

	var notes []models.Notes
	err := s.db.Where("category_id = ?", categoryID).
		Order("uploaded_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&notes).Error
	if err != nil {
		return models.Page[models.Notes]{}, err
	}
	return models.NewPage(notes, page, size, total), nil
}

func (s *NotesService) GetAllNotes(page, size int) (models.Page[models.Notes], error) {
	var total int64
	if err := s.db.Model(&models.Notes{}).Count(&total).Error; err != nil {
		return models.Page[models.Notes]{}, err
	}

	var notes []models.Notes
	err := s.db.Order("uploaded_at DESC").
		Offset(page * size).
		Limit(size).
		Find(&notes).Error
	if err != nil {
		return models.Page[models.Notes]{}, err
	}
	return models.NewPage(notes, page, size, total), nil
}

func (s *NotesService) GetNotes(id uint) (*models.Notes, error) {
	var notes models.Notes
	if err := s.db.First(&notes, id).Error; err != nil {
		return nil, apperr.NotFound("Notes not found with id: %d", id)
	}
	return &notes, nil
}

// GetNotesFile resolves a notes id to the on-disk path and the
// original filename to present in the download. The caller streams
// the bytes; this is only the handle lookup.
func (s *NotesService) GetNotesFile(id uint) (path, displayName string, err error) {
	notes, err := s.GetNotes(id)
	if err != nil {
		return "", "", err
	}
	if !s.files.Readable(notes.FilePath) {
		return "", "", apperr.NotFound("Notes file is not readable")
	}
	return s.files.Path(notes.FilePath), notes.FileName, nil
}
