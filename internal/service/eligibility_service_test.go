package service

import (
	"testing"

	"github.com/sahajranjan/jobportal/internal/model"
)

func TestScorePercentage(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 4, 0},
		{3, 4, 75},
		{2, 3, 67},
		{1, 3, 33},
		{4, 4, 100},
	}
	for _, c := range cases {
		if got := ScorePercentage(c.score, c.total); got != c.want {
			t.Errorf("ScorePercentage(%d, %d) = %d, want %d", c.score, c.total, got, c.want)
		}
	}
}

func completedAttempt(score, total int) model.AssignedTest {
	return model.AssignedTest{
		Status:         model.AssignmentStatusCompleted,
		Score:          &score,
		TotalQuestions: total,
	}
}

func TestEvaluateEligibilityUsesBestAttempt(t *testing.T) {
	eligible, highest := EvaluateEligibility([]model.AssignedTest{
		completedAttempt(2, 5), // 40%
		completedAttempt(4, 5), // 80%
		completedAttempt(3, 5), // 60%
	})
	if !eligible {
		t.Error("80% best attempt must be eligible")
	}
	if highest != 80 {
		t.Errorf("highest = %d, want 80", highest)
	}
}

func TestEvaluateEligibilityBoundary(t *testing.T) {
	if eligible, _ := EvaluateEligibility([]model.AssignedTest{completedAttempt(3, 4)}); !eligible {
		t.Error("exactly 75% must be eligible")
	}
	if eligible, _ := EvaluateEligibility([]model.AssignedTest{completedAttempt(74, 100)}); eligible {
		t.Error("74% must not be eligible")
	}
}

func TestEvaluateEligibilitySkipsIncompleteRows(t *testing.T) {
	score := 5
	eligible, highest := EvaluateEligibility([]model.AssignedTest{
		{Status: model.AssignmentStatusAssigned},
		{Status: model.AssignmentStatusCompleted}, // no score recorded
		{Status: model.AssignmentStatusCompleted, Score: &score, TotalQuestions: 0},
	})
	if eligible || highest != 0 {
		t.Errorf("got eligible=%v highest=%d, want ineligible with 0", eligible, highest)
	}
}

func TestEvaluateEligibilityNoAttempts(t *testing.T) {
	if eligible, _ := EvaluateEligibility(nil); eligible {
		t.Error("a candidate with no attempts must be ineligible")
	}
}

func TestCheckCandidateReadsOnlyOwnRows(t *testing.T) {
	repo := newStubAssignedRepo()
	own := completedAttempt(4, 5)
	own.CandidateID = 7
	other := completedAttempt(5, 5)
	other.CandidateID = 8
	repo.add(own)
	repo.add(other)

	svc := NewEligibilityService(repo)
	eligible, highest, err := svc.CheckCandidate(7)
	if err != nil {
		t.Fatalf("CheckCandidate: %v", err)
	}
	if !eligible || highest != 80 {
		t.Errorf("got eligible=%v highest=%d, want eligible at 80", eligible, highest)
	}
}
