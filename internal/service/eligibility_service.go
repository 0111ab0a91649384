package service

import (
	"math"

	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
)

// EligibilityThreshold unlocks job applications and interview scheduling.
// AttemptPassThreshold only labels an individual attempt as passed on the
// results screen. The two are intentionally distinct values.
const (
	EligibilityThreshold = 75
	AttemptPassThreshold = 70
)

// ScorePercentage rounds score/total to a whole percentage. Zero total
// yields zero rather than a division panic.
func ScorePercentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// EvaluateEligibility is the gate as a pure function: the best completed
// attempt with at least one question must reach EligibilityThreshold.
// A candidate with no completed attempts is ineligible.
func EvaluateEligibility(assignments []model.AssignedTest) (bool, int) {
	highest := 0
	for _, a := range assignments {
		if a.Status != model.AssignmentStatusCompleted || a.Score == nil || a.TotalQuestions == 0 {
			continue
		}
		if pct := ScorePercentage(*a.Score, a.TotalQuestions); pct > highest {
			highest = pct
		}
	}
	return highest >= EligibilityThreshold, highest
}

// EligibilityService answers the gate server-side so job-application and
// interview endpoints can enforce it instead of trusting the client.
type EligibilityService interface {
	CheckCandidate(candidateID uint) (eligible bool, highest int, err error)
}

type eligibilityService struct {
	assignedRepo repository.AssignedTestRepository
}

func NewEligibilityService(assignedRepo repository.AssignedTestRepository) EligibilityService {
	return &eligibilityService{assignedRepo: assignedRepo}
}

func (s *eligibilityService) CheckCandidate(candidateID uint) (bool, int, error) {
	assignments, err := s.assignedRepo.FindByCandidate(candidateID)
	if err != nil {
		return false, 0, err
	}
	eligible, highest := EvaluateEligibility(assignments)
	return eligible, highest, nil
}
