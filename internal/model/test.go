package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Category    string         `json:"category" gorm:"not null;index"`
	Difficulty  string         `json:"difficulty" gorm:"not null"` // "Easy", "Medium", "Hard"
	Description string         `json:"description,omitempty"`
	Duration    int            `json:"duration" gorm:"not null"` // minutes
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:TestID"`
	CreatedByID *uint          `json:"created_by,omitempty" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
