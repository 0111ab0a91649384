package repository

import (
	"github.com/sahajranjan/jobportal/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository interface {
	Create(iv *model.Interview) error
	FindByID(id uint) (*model.Interview, error)
	FindAll() ([]model.Interview, error)
	FindByCandidate(candidateID uint) ([]model.Interview, error)
	Update(iv *model.Interview) error
	Delete(id uint) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func interviewHistoryOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("interview_status_events.date ASC")
}

func (r *interviewRepository) Create(iv *model.Interview) error {
	return r.db.Create(iv).Error
}

func (r *interviewRepository) FindByID(id uint) (*model.Interview, error) {
	var iv model.Interview
	if err := r.db.Preload("History", interviewHistoryOrdered).First(&iv, id).Error; err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepository) FindAll() ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.Preload("History", interviewHistoryOrdered).
		Order("scheduled_at DESC").
		Find(&ivs).Error
	return ivs, err
}

func (r *interviewRepository) FindByCandidate(candidateID uint) ([]model.Interview, error) {
	var ivs []model.Interview
	err := r.db.Preload("History", interviewHistoryOrdered).
		Where("candidate_id = ?", candidateID).
		Order("scheduled_at DESC").
		Find(&ivs).Error
	return ivs, err
}

func (r *interviewRepository) Update(iv *model.Interview) error {
	return r.db.Save(iv).Error
}

func (r *interviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.Interview{}, id).Error
}
