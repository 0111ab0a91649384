package repository

import (
	"github.com/sahajranjan/jobportal/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(app *model.Application) error
	FindByID(id uint) (*model.Application, error)
	FindAll() ([]model.Application, error)
	FindByCandidate(candidateID uint) ([]model.Application, error)
	FindByJobAndCandidate(jobID, candidateID uint) (*model.Application, error)
	Update(app *model.Application) error
	Delete(id uint) error
	CountPerCandidate() (map[uint]int, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func historyOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("application_status_events.date ASC")
}

func (r *applicationRepository) Create(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) FindByID(id uint) (*model.Application, error) {
	var app model.Application
	if err := r.db.Preload("History", historyOrdered).First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindAll() ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Preload("History", historyOrdered).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByCandidate(candidateID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Preload("History", historyOrdered).
		Where("candidate_id = ?", candidateID).
		Order("applied_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByJobAndCandidate(jobID, candidateID uint) (*model.Application, error) {
	var app model.Application
	err := r.db.Where("job_id = ? AND candidate_id = ?", jobID, candidateID).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) Update(app *model.Application) error {
	// Save inserts freshly appended history entries alongside the status change.
	return r.db.Save(app).Error
}

func (r *applicationRepository) Delete(id uint) error {
	return r.db.Delete(&model.Application{}, id).Error
}

func (r *applicationRepository) CountPerCandidate() (map[uint]int, error) {
	var rows []struct {
		CandidateID uint
		Count       int
	}
	err := r.db.Model(&model.Application{}).
		Select("candidate_id, COUNT(*) as count").
		Group("candidate_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.CandidateID] = row.Count
	}
	return counts, nil
}
