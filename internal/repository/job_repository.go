package repository

import (
	"github.com/sahajranjan/jobportal/internal/model"
	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *model.Job) error
	FindByID(id uint) (*model.Job, error)
	FindAllWithApplicantCount() ([]struct {
		model.Job
		ApplicantCount int
	}, error)
	Update(job *model.Job) error
	Delete(id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindAllWithApplicantCount() ([]struct {
	model.Job
	ApplicantCount int
}, error) {
	var results []struct {
		model.Job
		ApplicantCount int
	}
	err := r.db.Model(&model.Job{}).
		Select("jobs.*, (SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.id AND applications.deleted_at IS NULL) as applicant_count").
		Where("jobs.deleted_at IS NULL").
		Order("jobs.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *jobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) Delete(id uint) error {
	return r.db.Delete(&model.Job{}, id).Error
}
