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

// TestTakingService covers the candidate side of the assignment ledger:
// listing open work and grading a submission.
type TestTakingService interface {
	ListMyTests(candidateID uint) ([]dto.AssignedTestDTO, error)
	SubmitTest(req dto.SubmitTestRequest) (*dto.SubmitTestResponse, error)
}

type testTakingService struct {
	assignedRepo repository.AssignedTestRepository
	now          func() time.Time
}

func NewTestTakingService(assignedRepo repository.AssignedTestRepository) TestTakingService {
	return &testTakingService{
		assignedRepo: assignedRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ListMyTests returns the candidate's rows across all statuses; clients
// filter for open work. Rows whose test was deleted after assignment come
// back without test details rather than failing the whole listing.
func (s *testTakingService) ListMyTests(candidateID uint) ([]dto.AssignedTestDTO, error) {
	assigned, err := s.assignedRepo.FindByCandidate(candidateID)
	if err != nil {
		log.Error().Err(err).Uint("candidateID", candidateID).Msg("ListMyTests: database error")
		return nil, fmt.Errorf("fetching assigned tests: %w", err)
	}
	dtos := make([]dto.AssignedTestDTO, 0, len(assigned))
	for i := range assigned {
		dtos = append(dtos, *assignedTestDTO(&assigned[i]))
	}
	return dtos, nil
}

// SubmitTest grades an assignment: answers are positional against the
// test's questions in exam order, exact index equality decides correctness,
// so -1 (unanswered) and out-of-range values are always wrong. The row
// moves Assigned -> Completed exactly once; a second submission is rejected
// with a conflict instead of overwriting the recorded result.
func (s *testTakingService) SubmitTest(req dto.SubmitTestRequest) (*dto.SubmitTestResponse, error) {
	assigned, err := s.assignedRepo.FindByIDWithTest(req.AssignedTestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("assigned test %d not found", req.AssignedTestID))
		}
		return nil, fmt.Errorf("loading assigned test %d: %w", req.AssignedTestID, err)
	}
	if assigned.Status == model.AssignmentStatusCompleted {
		return nil, NewConflictError("test already submitted")
	}
	if assigned.Test.ID == 0 {
		// The test was deleted after assignment; the row is orphaned.
		return nil, NewNotFoundError("test no longer available")
	}
	questions := assigned.Test.Questions
	if len(questions) == 0 {
		return nil, NewInvalidError("test has no questions")
	}

	score := 0
	results := make([]model.AnswerResult, 0, len(questions))
	for i, q := range questions {
		selected := -1
		if i < len(req.Answers) {
			selected = req.Answers[i]
		}
		correct := selected == q.CorrectOption
		if correct {
			score++
		}
		results = append(results, model.AnswerResult{
			AssignedTestID: assigned.ID,
			QuestionText:   q.Text,
			Selected:       selected,
			Correct:        correct,
		})
	}

	completedAt := s.now()
	assigned.Status = model.AssignmentStatusCompleted
	assigned.CompletedAt = &completedAt
	assigned.Score = &score
	assigned.TotalQuestions = len(questions)
	assigned.Answers = results

	won, err := s.assignedRepo.Complete(assigned)
	if err != nil {
		log.Error().Err(err).Uint("assignedTestID", assigned.ID).Msg("SubmitTest: failed to persist result")
		return nil, fmt.Errorf("persisting submission: %w", err)
	}
	if !won {
		// A concurrent submission landed between the read above and the
		// conditional write.
		return nil, NewConflictError("test already submitted")
	}

	log.Info().
		Uint("assignedTestID", assigned.ID).
		Uint("candidateID", assigned.CandidateID).
		Int("score", score).
		Int("total", len(questions)).
		Msg("Test submission graded")

	answerDTOs := make([]dto.AnswerResultDTO, 0, len(results))
	for _, r := range results {
		answerDTOs = append(answerDTOs, dto.AnswerResultDTO{
			Question: r.QuestionText,
			Selected: r.Selected,
			Correct:  r.Correct,
		})
	}
	pct := ScorePercentage(score, len(questions))
	return &dto.SubmitTestResponse{
		Score:      score,
		Total:      len(questions),
		Percentage: pct,
		Passed:     pct >= AttemptPassThreshold,
		Answers:    answerDTOs,
	}, nil
}
