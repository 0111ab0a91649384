package model

import (
	"testing"
	"time"
)

func TestApplicationTransitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		allowed  bool
	}{
		{ApplicationStatusNew, ApplicationStatusReviewed, true},
		{ApplicationStatusNew, ApplicationStatusHired, true},
		{ApplicationStatusNew, ApplicationStatusRejected, true},
		{ApplicationStatusReviewed, ApplicationStatusInterview, true},
		{ApplicationStatusReviewed, ApplicationStatusNew, false},
		{ApplicationStatusInterview, ApplicationStatusHired, true},
		{ApplicationStatusInterview, ApplicationStatusReviewed, false},
		{ApplicationStatusHired, ApplicationStatusRejected, false},
		{ApplicationStatusRejected, ApplicationStatusNew, false},
		{ApplicationStatusNew, ApplicationStatusNew, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.allowed {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestApplicationTransitionAppendsHistory(t *testing.T) {
	now := time.Now()
	app := Application{
		CurrentStatus: ApplicationStatusNew,
		History:       []ApplicationStatusEvent{{Status: ApplicationStatusNew, Date: now.Add(-time.Hour)}},
	}

	if !app.Transition(ApplicationStatusReviewed, now) {
		t.Fatal("New -> Reviewed should be allowed")
	}
	if app.CurrentStatus != ApplicationStatusReviewed {
		t.Errorf("status = %q, want Reviewed", app.CurrentStatus)
	}
	if len(app.History) != 2 {
		t.Fatalf("got %d history events, want 2", len(app.History))
	}
	last := app.History[len(app.History)-1]
	if last.Status != app.CurrentStatus {
		t.Error("last history entry must match current status")
	}
	if !last.Date.Equal(now) {
		t.Error("history entry must carry the transition time")
	}
}

func TestApplicationTransitionRejectedLeavesStateUntouched(t *testing.T) {
	app := Application{
		CurrentStatus: ApplicationStatusHired,
		History:       []ApplicationStatusEvent{{Status: ApplicationStatusHired, Date: time.Now()}},
	}

	if app.Transition(ApplicationStatusReviewed, time.Now()) {
		t.Fatal("Hired is terminal")
	}
	if app.CurrentStatus != ApplicationStatusHired || len(app.History) != 1 {
		t.Error("a rejected transition must not mutate the application")
	}
}

func TestParseApplicationStatus(t *testing.T) {
	if status, ok := ParseApplicationStatus("Interview"); !ok || status != ApplicationStatusInterview {
		t.Errorf("ParseApplicationStatus(Interview) = %q, %v", status, ok)
	}
	if _, ok := ParseApplicationStatus("Archived"); ok {
		t.Error("unknown status must not parse")
	}
}
