package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
	"gorm.io/gorm"
)

type ApplicationService interface {
	Create(req dto.ApplicationCreateDTO) (*dto.ApplicationResponseDTO, error)
	Get(id uint) (*dto.ApplicationResponseDTO, error)
	List(candidateID *uint) ([]dto.ApplicationResponseDTO, error)
	UpdateStatus(id uint, req dto.ApplicationUpdateDTO) (*dto.ApplicationResponseDTO, error)
	Delete(id uint) error
}

type applicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create is the admin-side entry point; the candidate-side one is
// JobService.Apply, which additionally runs the eligibility gate.
func (s *applicationService) Create(req dto.ApplicationCreateDTO) (*dto.ApplicationResponseDTO, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("job %d not found", req.JobID))
		}
		return nil, fmt.Errorf("loading job %d: %w", req.JobID, err)
	}
	candidate, err := s.userRepo.FindByID(req.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("candidate %d not found", req.CandidateID))
		}
		return nil, fmt.Errorf("loading candidate %d: %w", req.CandidateID, err)
	}

	now := s.now()
	app := model.Application{
		JobID:             req.JobID,
		CandidateID:       req.CandidateID,
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
		log.Error().Err(err).Msg("CreateApplication: database error")
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return applicationResponse(&app), nil
}

func (s *applicationService) Get(id uint) (*dto.ApplicationResponseDTO, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("application %d not found", id))
		}
		return nil, fmt.Errorf("loading application %d: %w", id, err)
	}
	return applicationResponse(app), nil
}

func (s *applicationService) List(candidateID *uint) ([]dto.ApplicationResponseDTO, error) {
	var (
		apps []model.Application
		err  error
	)
	if candidateID != nil {
		apps, err = s.appRepo.FindByCandidate(*candidateID)
	} else {
		apps, err = s.appRepo.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("fetching applications: %w", err)
	}
	dtos := make([]dto.ApplicationResponseDTO, 0, len(apps))
	for i := range apps {
		dtos = append(dtos, *applicationResponse(&apps[i]))
	}
	return dtos, nil
}

// UpdateStatus runs the application state machine: the requested status must
// be a legal next state, and the audit entry is appended in the same write.
func (s *applicationService) UpdateStatus(id uint, req dto.ApplicationUpdateDTO) (*dto.ApplicationResponseDTO, error) {
	next, ok := model.ParseApplicationStatus(req.Status)
	if !ok {
		return nil, NewInvalidError(fmt.Sprintf("unknown application status %q", req.Status))
	}
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("application %d not found", id))
		}
		return nil, fmt.Errorf("loading application %d: %w", id, err)
	}
	if !app.Transition(next, s.now()) {
		return nil, NewInvalidError(
			fmt.Sprintf("cannot move application from %s to %s", app.CurrentStatus, next))
	}
	if err := s.appRepo.Update(app); err != nil {
		return nil, fmt.Errorf("updating application %d: %w", id, err)
	}
	log.Info().Uint("applicationID", id).Str("status", string(next)).Msg("Application status changed")
	return applicationResponse(app), nil
}

func (s *applicationService) Delete(id uint) error {
	if _, err := s.appRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError(fmt.Sprintf("application %d not found", id))
		}
		return fmt.Errorf("loading application %d: %w", id, err)
	}
	return s.appRepo.Delete(id)
}

func applicationResponse(app *model.Application) *dto.ApplicationResponseDTO {
	history := make([]dto.StatusEventDTO, 0, len(app.History))
	for _, h := range app.History {
		history = append(history, dto.StatusEventDTO{Status: string(h.Status), Date: h.Date})
	}
	return &dto.ApplicationResponseDTO{
		ID:                app.ID,
		JobID:             app.JobID,
		CandidateID:       app.CandidateID,
		ApplicantName:     app.ApplicantName,
		ApplicantEmail:    app.ApplicantEmail,
		ApplicantPhone:    app.ApplicantPhone,
		ApplicantLocation: app.ApplicantLocation,
		JobTitle:          app.JobTitle,
		Company:           app.Company,
		AppliedDate:       app.AppliedDate,
		CurrentStatus:     string(app.CurrentStatus),
		History:           history,
		Experience:        app.Experience,
		Skills:            app.Skills,
		Bio:               app.Bio,
		ResumeURL:         app.ResumeURL,
		CoverLetter:       app.CoverLetter,
	}
}
