package admin

import (
	"github.com/sahajranjan/jobportal/internal/dto"
)

type stubJobService struct {
	updatedID  uint
	updatedReq dto.JobUpdateDTO
}

func (s *stubJobService) CreateJob(req dto.JobCreateDTO, postedBy *uint) (*dto.JobResponseDTO, error) {
	return &dto.JobResponseDTO{Title: req.Title}, nil
}

func (s *stubJobService) ListJobs() ([]dto.JobResponseDTO, error) { return nil, nil }

func (s *stubJobService) GetJob(id uint) (*dto.JobResponseDTO, error) {
	return &dto.JobResponseDTO{ID: id}, nil
}

func (s *stubJobService) UpdateJob(id uint, req dto.JobUpdateDTO) (*dto.JobResponseDTO, error) {
	s.updatedID = id
	s.updatedReq = req
	resp := &dto.JobResponseDTO{ID: id}
	if req.Title != nil {
		resp.Title = *req.Title
	}
	return resp, nil
}

func (s *stubJobService) DeleteJob(id uint) error { return nil }

func (s *stubJobService) Apply(jobID, candidateID uint, req dto.ApplyRequest) (*dto.ApplicationResponseDTO, error) {
	return nil, nil
}

func (s *stubJobService) ListCandidateApplications(candidateID uint) ([]dto.ApplicationResponseDTO, error) {
	return nil, nil
}

type stubApplicationService struct {
	listCalls   int
	lastFilter  *uint
	listResults []dto.ApplicationResponseDTO
}

func (s *stubApplicationService) Create(req dto.ApplicationCreateDTO) (*dto.ApplicationResponseDTO, error) {
	return &dto.ApplicationResponseDTO{}, nil
}

func (s *stubApplicationService) Get(id uint) (*dto.ApplicationResponseDTO, error) {
	return &dto.ApplicationResponseDTO{ID: id}, nil
}

func (s *stubApplicationService) List(candidateID *uint) ([]dto.ApplicationResponseDTO, error) {
	s.listCalls++
	s.lastFilter = candidateID
	return s.listResults, nil
}

func (s *stubApplicationService) UpdateStatus(id uint, req dto.ApplicationUpdateDTO) (*dto.ApplicationResponseDTO, error) {
	return &dto.ApplicationResponseDTO{ID: id}, nil
}

func (s *stubApplicationService) Delete(id uint) error { return nil }
