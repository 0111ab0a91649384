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

type InterviewService interface {
	Create(req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error)
	Get(id uint) (*dto.InterviewResponseDTO, error)
	List(candidateID *uint) ([]dto.InterviewResponseDTO, error)
	Update(id uint, req dto.InterviewUpdateDTO) (*dto.InterviewResponseDTO, error)
	Delete(id uint) error
}

type interviewService struct {
	ivRepo   repository.InterviewRepository
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewInterviewService(
	ivRepo repository.InterviewRepository,
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
) InterviewService {
	return &interviewService{
		ivRepo:   ivRepo,
		appRepo:  appRepo,
		userRepo: userRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *interviewService) Create(req dto.InterviewCreateDTO) (*dto.InterviewResponseDTO, error) {
	app, err := s.appRepo.FindByID(req.ApplicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("application %d not found", req.ApplicationID))
		}
		return nil, fmt.Errorf("loading application %d: %w", req.ApplicationID, err)
	}
	if app.CandidateID != req.CandidateID {
		return nil, NewInvalidError("application does not belong to this candidate")
	}
	interviewer, err := s.userRepo.FindByID(req.InterviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("interviewer %d not found", req.InterviewerID))
		}
		return nil, fmt.Errorf("loading interviewer %d: %w", req.InterviewerID, err)
	}
	if interviewer.Role == model.RoleCandidate {
		return nil, NewInvalidError("interviewer must hold the interviewer or admin role")
	}

	now := s.now()
	iv := model.Interview{
		CandidateID:   req.CandidateID,
		InterviewerID: req.InterviewerID,
		JobID:         req.JobID,
		ApplicationID: req.ApplicationID,
		ScheduledAt:   req.ScheduledAt,
		Type:          req.Type,
		Duration:      req.Duration,
		Status:        model.InterviewStatusScheduled,
		History: []model.InterviewStatusEvent{
			{Status: model.InterviewStatusScheduled, Date: now},
		},
		Outcome:         "Pending",
		Notes:           req.Notes,
		InterviewerName: interviewer.FullName,
	}
	if err := s.ivRepo.Create(&iv); err != nil {
		log.Error().Err(err).Msg("CreateInterview: database error")
		return nil, fmt.Errorf("creating interview: %w", err)
	}

	// Move the application along when the machine allows it; an application
	// already past Interview keeps its state.
	if app.Transition(model.ApplicationStatusInterview, now) {
		if err := s.appRepo.Update(app); err != nil {
			log.Warn().Err(err).Uint("applicationID", app.ID).
				Msg("CreateInterview: failed to move application to Interview")
		}
	}
	return interviewResponse(&iv), nil
}

func (s *interviewService) Get(id uint) (*dto.InterviewResponseDTO, error) {
	iv, err := s.ivRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("interview %d not found", id))
		}
		return nil, fmt.Errorf("loading interview %d: %w", id, err)
	}
	return interviewResponse(iv), nil
}

func (s *interviewService) List(candidateID *uint) ([]dto.InterviewResponseDTO, error) {
	var (
		ivs []model.Interview
		err error
	)
	if candidateID != nil {
		ivs, err = s.ivRepo.FindByCandidate(*candidateID)
	} else {
		ivs, err = s.ivRepo.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("fetching interviews: %w", err)
	}
	dtos := make([]dto.InterviewResponseDTO, 0, len(ivs))
	for i := range ivs {
		dtos = append(dtos, *interviewResponse(&ivs[i]))
	}
	return dtos, nil
}

func (s *interviewService) Update(id uint, req dto.InterviewUpdateDTO) (*dto.InterviewResponseDTO, error) {
	iv, err := s.ivRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("interview %d not found", id))
		}
		return nil, fmt.Errorf("loading interview %d: %w", id, err)
	}

	if req.Status != nil {
		next, ok := model.ParseInterviewStatus(*req.Status)
		if !ok {
			return nil, NewInvalidError(fmt.Sprintf("unknown interview status %q", *req.Status))
		}
		if !iv.Transition(next, s.now()) {
			return nil, NewInvalidError(
				fmt.Sprintf("cannot move interview from %s to %s", iv.Status, next))
		}
	}
	if req.ScheduledAt != nil {
		iv.ScheduledAt = *req.ScheduledAt
	}
	if req.Type != nil {
		iv.Type = *req.Type
	}
	if req.Duration != nil {
		iv.Duration = *req.Duration
	}
	if req.Notes != nil {
		iv.Notes = *req.Notes
	}
	if req.Outcome != nil || req.Feedback != nil {
		if iv.Status != model.InterviewStatusCompleted {
			return nil, NewInvalidError("outcome and feedback require a completed interview")
		}
		if req.Outcome != nil {
			iv.Outcome = *req.Outcome
		}
		if req.Feedback != nil {
			iv.Feedback = *req.Feedback
		}
	}

	if err := s.ivRepo.Update(iv); err != nil {
		return nil, fmt.Errorf("updating interview %d: %w", id, err)
	}
	return interviewResponse(iv), nil
}

func (s *interviewService) Delete(id uint) error {
	if _, err := s.ivRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError(fmt.Sprintf("interview %d not found", id))
		}
		return fmt.Errorf("loading interview %d: %w", id, err)
	}
	return s.ivRepo.Delete(id)
}

func interviewResponse(iv *model.Interview) *dto.InterviewResponseDTO {
	history := make([]dto.StatusEventDTO, 0, len(iv.History))
	for _, h := range iv.History {
		history = append(history, dto.StatusEventDTO{Status: string(h.Status), Date: h.Date})
	}
	return &dto.InterviewResponseDTO{
		ID:              iv.ID,
		CandidateID:     iv.CandidateID,
		InterviewerID:   iv.InterviewerID,
		JobID:           iv.JobID,
		ApplicationID:   iv.ApplicationID,
		ScheduledAt:     iv.ScheduledAt,
		Type:            iv.Type,
		Duration:        iv.Duration,
		Status:          string(iv.Status),
		History:         history,
		Outcome:         iv.Outcome,
		Notes:           iv.Notes,
		Feedback:        iv.Feedback,
		InterviewerName: iv.InterviewerName,
		CreatedAt:       iv.CreatedAt,
	}
}
