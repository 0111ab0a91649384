package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	ID            uint                        `gorm:"primarykey" json:"id"`
	Title         string                      `json:"title" gorm:"not null"`
	Company       string                      `json:"company" gorm:"not null"`
	Location      string                      `json:"location"`
	Type          string                      `json:"type"` // "Full-time", "Contract", ...
	SalaryMin     int                         `json:"salary_min"`
	SalaryMax     int                         `json:"salary_max"`
	ExperienceMin int                         `json:"experience_min"`
	ExperienceMax int                         `json:"experience_max"`
	Description   string                      `json:"description" gorm:"type:text"`
	Requirements  datatypes.JSONSlice[string] `json:"requirements"`
	PostedByID    *uint                       `json:"posted_by,omitempty" gorm:"index"`
	Applications  []Application               `json:"applications,omitempty" gorm:"foreignKey:JobID"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}
