package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
	"gorm.io/gorm"
)

type TestAdminService interface {
	CreateTest(req dto.TestCreateDTO, createdBy *uint) (*dto.TestResponseDTO, error)
	ListTests() ([]dto.TestSummaryDTO, error)
	GetTest(id uint) (*dto.TestResponseDTO, error)
	UpdateTest(id uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	DeleteTest(id uint) error
	AssignTest(req dto.AssignTestRequest, assignedBy *uint) (*dto.AssignedTestDTO, error)
	ListAssignedTests() ([]dto.AssignedTestDTO, error)
}

type testAdminService struct {
	testRepo     repository.TestRepository
	assignedRepo repository.AssignedTestRepository
	userRepo     repository.UserRepository
}

func NewTestAdminService(
	testRepo repository.TestRepository,
	assignedRepo repository.AssignedTestRepository,
	userRepo repository.UserRepository,
) TestAdminService {
	return &testAdminService{testRepo: testRepo, assignedRepo: assignedRepo, userRepo: userRepo}
}

func questionsFromDTO(in []dto.QuestionCreateDTO) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(in))
	for i, q := range in {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return nil, NewInvalidError(fmt.Sprintf("question %d: answer index %d outside options", i+1, q.Answer))
		}
		questions = append(questions, model.Question{
			Text:          q.Question,
			Options:       q.Options,
			CorrectOption: q.Answer,
			OrderInTest:   i + 1,
		})
	}
	return questions, nil
}

func (s *testAdminService) CreateTest(req dto.TestCreateDTO, createdBy *uint) (*dto.TestResponseDTO, error) {
	questions, err := questionsFromDTO(req.Questions)
	if err != nil {
		return nil, err
	}
	test := model.Test{
		Title:       req.Title,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Description: req.Description,
		Questions:   questions,
		CreatedByID: createdBy,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Msg("CreateTest: database error")
		return nil, fmt.Errorf("creating test: %w", err)
	}
	return testResponse(&test), nil
}

func (s *testAdminService) ListTests() ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListTests: database error")
		return nil, fmt.Errorf("fetching tests: %w", err)
	}
	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			Title:         twc.Test.Title,
			Category:      twc.Test.Category,
			Difficulty:    twc.Test.Difficulty,
			Duration:      twc.Test.Duration,
			Description:   twc.Test.Description,
			QuestionCount: twc.QuestionCount,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *testAdminService) GetTest(id uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("test %d not found", id))
		}
		return nil, fmt.Errorf("loading test %d: %w", id, err)
	}
	return testResponse(test), nil
}

func (s *testAdminService) UpdateTest(id uint, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("test %d not found", id))
		}
		return nil, fmt.Errorf("loading test %d: %w", id, err)
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Category != nil {
		test.Category = *req.Category
	}
	if req.Difficulty != nil {
		test.Difficulty = *req.Difficulty
	}
	if req.Duration != nil {
		test.Duration = *req.Duration
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if err := s.testRepo.Update(test); err != nil {
		return nil, fmt.Errorf("updating test %d: %w", id, err)
	}

	if req.Questions != nil {
		questions, err := questionsFromDTO(*req.Questions)
		if err != nil {
			return nil, err
		}
		if err := s.testRepo.ReplaceQuestions(id, questions); err != nil {
			return nil, fmt.Errorf("replacing questions for test %d: %w", id, err)
		}
	}

	updated, err := s.testRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, fmt.Errorf("reloading test %d: %w", id, err)
	}
	return testResponse(updated), nil
}

func (s *testAdminService) DeleteTest(id uint) error {
	if _, err := s.testRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError(fmt.Sprintf("test %d not found", id))
		}
		return fmt.Errorf("loading test %d: %w", id, err)
	}
	if err := s.testRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting test %d: %w", id, err)
	}
	log.Info().Uint("testID", id).Msg("Test deleted; completed assignments keep their answer snapshots")
	return nil
}

// AssignTest creates one assignment row. The same test may be assigned to
// the same candidate any number of times; each row is completable on its own.
func (s *testAdminService) AssignTest(req dto.AssignTestRequest, assignedBy *uint) (*dto.AssignedTestDTO, error) {
	if _, err := s.testRepo.FindByID(req.TestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("test %d not found", req.TestID))
		}
		return nil, fmt.Errorf("loading test %d: %w", req.TestID, err)
	}
	candidate, err := s.userRepo.FindByID(req.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("candidate %d not found", req.CandidateID))
		}
		return nil, fmt.Errorf("loading candidate %d: %w", req.CandidateID, err)
	}
	if candidate.Role != model.RoleCandidate {
		return nil, NewInvalidError("tests can only be assigned to candidates")
	}

	assigned := model.AssignedTest{
		TestID:       req.TestID,
		CandidateID:  req.CandidateID,
		AssignedByID: assignedBy,
		Status:       model.AssignmentStatusAssigned,
	}
	if err := s.assignedRepo.Create(&assigned); err != nil {
		log.Error().Err(err).Uint("testID", req.TestID).Uint("candidateID", req.CandidateID).
			Msg("AssignTest: database error")
		return nil, fmt.Errorf("assigning test: %w", err)
	}
	return assignedTestDTO(&assigned), nil
}

func (s *testAdminService) ListAssignedTests() ([]dto.AssignedTestDTO, error) {
	assigned, err := s.assignedRepo.FindAllWithDetails()
	if err != nil {
		return nil, fmt.Errorf("fetching assigned tests: %w", err)
	}
	dtos := make([]dto.AssignedTestDTO, 0, len(assigned))
	for i := range assigned {
		dtos = append(dtos, *assignedTestDTO(&assigned[i]))
	}
	return dtos, nil
}

func testResponse(test *model.Test) *dto.TestResponseDTO {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Msg("Failed to copy test to response DTO")
	}
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(test.Questions))
	for _, q := range test.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponseDTO{
			ID:          q.ID,
			TestID:      q.TestID,
			Question:    q.Text,
			Options:     q.Options,
			Answer:      q.CorrectOption,
			OrderInTest: q.OrderInTest,
		})
	}
	return &resp
}

func assignedTestDTO(a *model.AssignedTest) *dto.AssignedTestDTO {
	out := dto.AssignedTestDTO{
		ID:          a.ID,
		TestID:      a.TestID,
		CandidateID: a.CandidateID,
		AssignedBy:  a.AssignedByID,
		Status:      a.Status,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
		Score:       a.Score,
		Total:       a.TotalQuestions,
		CreatedAt:   a.CreatedAt,
	}
	if a.Test.ID != 0 {
		out.Test = testResponse(&a.Test)
	}
	if a.Candidate.ID != 0 {
		summary := userSummary(&a.Candidate)
		out.Candidate = &summary
	}
	return &out
}
