package models

import "time"

type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuestionText  string    `gorm:"type:text;not null" json:"questionText"`
	OptionA       string    `gorm:"size:500;not null" json:"optionA"`
	OptionB       string    `gorm:"size:500;not null" json:"optionB"`
	OptionC       string    `gorm:"size:500;not null" json:"optionC"`
	OptionD       string    `gorm:"size:500;not null" json:"optionD"`
	CorrectOption string    `gorm:"size:1;not null" json:"correctOption"`
	CategoryID    uint      `gorm:"not null;index" json:"categoryId"`
	Category      Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Active        bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
}
