package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(req dto.JobCreateDTO, postedBy *uint) (*dto.JobResponseDTO, error)
	ListJobs() ([]dto.JobResponseDTO, error)
	GetJob(id uint) (*dto.JobResponseDTO, error)
	UpdateJob(id uint, req dto.JobUpdateDTO) (*dto.JobResponseDTO, error)
	DeleteJob(id uint) error
	Apply(jobID, candidateID uint, req dto.ApplyRequest) (*dto.ApplicationResponseDTO, error)
	ListCandidateApplications(candidateID uint) ([]dto.ApplicationResponseDTO, error)
}

type jobService struct {
	jobRepo     repository.JobRepository
	appRepo     repository.ApplicationRepository
	userRepo    repository.UserRepository
	eligibility EligibilityService
	now         func() time.Time
}

func NewJobService(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	eligibility EligibilityService,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		userRepo:    userRepo,
		eligibility: eligibility,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *jobService) CreateJob(req dto.JobCreateDTO, postedBy *uint) (*dto.JobResponseDTO, error) {
	if req.SalaryMax < req.SalaryMin {
		return nil, NewInvalidError("salary_max must not be below salary_min")
	}
	if req.ExperienceMax < req.ExperienceMin {
		return nil, NewInvalidError("experience_max must not be below experience_min")
	}
	job := model.Job{
		Title:         req.Title,
		Company:       req.Company,
		Location:      req.Location,
		Type:          req.Type,
		SalaryMin:     req.SalaryMin,
		SalaryMax:     req.SalaryMax,
		ExperienceMin: req.ExperienceMin,
		ExperienceMax: req.ExperienceMax,
		Description:   req.Description,
		Requirements:  req.Requirements,
		PostedByID:    postedBy,
	}
	if err := s.jobRepo.Create(&job); err != nil {
		log.Error().Err(err).Msg("CreateJob: database error")
		return nil, fmt.Errorf("creating job: %w", err)
	}
	return jobResponse(&job, 0), nil
}

func (s *jobService) ListJobs() ([]dto.JobResponseDTO, error) {
	jobs, err := s.jobRepo.FindAllWithApplicantCount()
	if err != nil {
		return nil, fmt.Errorf("fetching jobs: %w", err)
	}
	dtos := make([]dto.JobResponseDTO, 0, len(jobs))
	for i := range jobs {
		dtos = append(dtos, *jobResponse(&jobs[i].Job, jobs[i].ApplicantCount))
	}
	return dtos, nil
}

func (s *jobService) GetJob(id uint) (*dto.JobResponseDTO, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("job %d not found", id))
		}
		return nil, fmt.Errorf("loading job %d: %w", id, err)
	}
	return jobResponse(job, 0), nil
}

func (s *jobService) UpdateJob(id uint, req dto.JobUpdateDTO) (*dto.JobResponseDTO, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("job %d not found", id))
		}
		return nil, fmt.Errorf("loading job %d: %w", id, err)
	}
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	if req.ExperienceMin != nil {
		job.ExperienceMin = *req.ExperienceMin
	}
	if req.ExperienceMax != nil {
		job.ExperienceMax = *req.ExperienceMax
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("updating job %d: %w", id, err)
	}
	return jobResponse(job, 0), nil
}

func (s *jobService) DeleteJob(id uint) error {
	if _, err := s.jobRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError(fmt.Sprintf("job %d not found", id))
		}
		return fmt.Errorf("loading job %d: %w", id, err)
	}
	return s.jobRepo.Delete(id)
}

// Apply creates an application after the server-side eligibility gate: a
// candidate must have a completed mock test at or above the eligibility
// threshold before job features unlock.
func (s *jobService) Apply(jobID, candidateID uint, req dto.ApplyRequest) (*dto.ApplicationResponseDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("job %d not found", jobID))
		}
		return nil, fmt.Errorf("loading job %d: %w", jobID, err)
	}
	candidate, err := s.userRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("candidate %d not found", candidateID))
		}
		return nil, fmt.Errorf("loading candidate %d: %w", candidateID, err)
	}

	eligible, _, err := s.eligibility.CheckCandidate(candidateID)
	if err != nil {
		return nil, fmt.Errorf("checking eligibility: %w", err)
	}
	if !eligible {
		return nil, NewForbiddenError(
			fmt.Sprintf("a mock test score of at least %d%% is required to apply for jobs", EligibilityThreshold))
	}

	if existing, err := s.appRepo.FindByJobAndCandidate(jobID, candidateID); err == nil && existing != nil {
		return nil, NewConflictError("already applied to this job")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing application: %w", err)
	}

	now := s.now()
	app := model.Application{
		JobID:             jobID,
		CandidateID:       candidateID,
		ApplicantName:     candidate.FullName,
		ApplicantEmail:    candidate.Email,
		ApplicantPhone:    req.Phone,
		ApplicantLocation: req.Location,
		JobTitle:          job.Title,
		Company:           job.Company,
		AppliedDate:       now,
		CurrentStatus:     model.ApplicationStatusNew,
		History: []model.ApplicationStatusEvent{
			{Status: model.ApplicationStatusNew, Date: now},
		},
		Experience:  req.Experience,
		Skills:      req.Skills,
		Bio:         req.Bio,
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	}
	if err := s.appRepo.Create(&app); err != nil {
		log.Error().Err(err).Uint("jobID", jobID).Uint("candidateID", candidateID).
			Msg("Apply: database error")
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return applicationResponse(&app), nil
}

func (s *jobService) ListCandidateApplications(candidateID uint) ([]dto.ApplicationResponseDTO, error) {
	apps, err := s.appRepo.FindByCandidate(candidateID)
	if err != nil {
		return nil, fmt.Errorf("fetching applications: %w", err)
	}
	dtos := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		dtos = append(dtos, *applicationResponse(&apps[i]))
	}
	return dtos, nil
}

func jobResponse(job *model.Job, applicantCount int) *dto.JobResponseDTO {
	var resp dto.JobResponseDTO
	if err := copier.Copy(&resp, job); err != nil {
		log.Error().Err(err).Uint("jobID", job.ID).Msg("Failed to copy job to response DTO")
	}
	resp.Requirements = job.Requirements
	resp.ApplicantCount = applicantCount
	return &resp
}
