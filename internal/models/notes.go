package models

import "time"

// Notes is a PDF study document attached to a category. Rows are
// immutable once created; the file itself lives in the file store
// under the relative path recorded in FilePath.
type Notes struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	FileName   string    `gorm:"size:255;not null" json:"fileName"`
	FilePath   string    `gorm:"size:500;not null" json:"filePath"`
	CategoryID uint      `gorm:"not null;index" json:"categoryId"`
	Category   Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
}
