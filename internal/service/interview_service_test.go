package service

import (
	"testing"
	"time"

	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
)

func newInterviewFixture() (InterviewService, *stubInterviewRepo, *stubApplicationRepo, *stubUserRepo) {
	ivRepo := newStubInterviewRepo()
	appRepo := newStubApplicationRepo()
	userRepo := newStubUserRepo()
	return NewInterviewService(ivRepo, appRepo, userRepo), ivRepo, appRepo, userRepo
}

func scheduleRequest(applicationID uint) dto.InterviewCreateDTO {
	return dto.InterviewCreateDTO{
		CandidateID:   7,
		InterviewerID: 3,
		JobID:         1,
		ApplicationID: applicationID,
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		Type:          "Video Call",
		Duration:      60,
	}
}

func TestCreateInterviewMovesApplicationForward(t *testing.T) {
	svc, _, appRepo, userRepo := newInterviewFixture()
	app := appRepo.add(model.Application{JobID: 1, CandidateID: 7, CurrentStatus: model.ApplicationStatusReviewed})
	userRepo.add(model.User{ID: 3, FullName: "Ira Glass", Role: model.RoleInterviewer})

	resp, err := svc.Create(scheduleRequest(app.ID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Status != string(model.InterviewStatusScheduled) {
		t.Errorf("status = %q, want Scheduled", resp.Status)
	}
	if resp.Outcome != "Pending" {
		t.Errorf("outcome = %q, want Pending", resp.Outcome)
	}
	if resp.InterviewerName != "Ira Glass" {
		t.Errorf("interviewer name = %q", resp.InterviewerName)
	}

	stored, _ := appRepo.FindByID(app.ID)
	if stored.CurrentStatus != model.ApplicationStatusInterview {
		t.Errorf("application status = %q, want Interview", stored.CurrentStatus)
	}
}

func TestCreateInterviewRejectsForeignApplication(t *testing.T) {
	svc, _, appRepo, userRepo := newInterviewFixture()
	app := appRepo.add(model.Application{JobID: 1, CandidateID: 99, CurrentStatus: model.ApplicationStatusNew})
	userRepo.add(model.User{ID: 3, Role: model.RoleInterviewer})

	_, err := svc.Create(scheduleRequest(app.ID))
	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != ErrorInvalid {
		t.Fatalf("got %v, want invalid when the application belongs to someone else", err)
	}
}

func TestCreateInterviewRejectsCandidateInterviewer(t *testing.T) {
	svc, _, appRepo, userRepo := newInterviewFixture()
	app := appRepo.add(model.Application{JobID: 1, CandidateID: 7, CurrentStatus: model.ApplicationStatusNew})
	userRepo.add(model.User{ID: 3, Role: model.RoleCandidate})

	_, err := svc.Create(scheduleRequest(app.ID))
	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != ErrorInvalid {
		t.Fatalf("got %v, want invalid when the interviewer is a candidate", err)
	}
}

func TestUpdateInterviewStateMachine(t *testing.T) {
	svc, ivRepo, _, _ := newInterviewFixture()
	iv := &model.Interview{
		CandidateID: 7,
		Status:      model.InterviewStatusScheduled,
		History: []model.InterviewStatusEvent{
			{Status: model.InterviewStatusScheduled, Date: time.Now()},
		},
	}
	if err := ivRepo.Create(iv); err != nil {
		t.Fatal(err)
	}

	completed := string(model.InterviewStatusCompleted)
	_, err := svc.Update(iv.ID, dto.InterviewUpdateDTO{Status: &completed})
	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != ErrorInvalid {
		t.Fatalf("got %v, want invalid for Scheduled -> Completed", err)
	}

	inProgress := string(model.InterviewStatusInProgress)
	if _, err := svc.Update(iv.ID, dto.InterviewUpdateDTO{Status: &inProgress}); err != nil {
		t.Fatalf("Scheduled -> In Progress: %v", err)
	}
	resp, err := svc.Update(iv.ID, dto.InterviewUpdateDTO{Status: &completed})
	if err != nil {
		t.Fatalf("In Progress -> Completed: %v", err)
	}
	if len(resp.History) != 3 {
		t.Errorf("got %d history events, want 3", len(resp.History))
	}
}

func TestUpdateInterviewOutcomeRequiresCompletion(t *testing.T) {
	svc, ivRepo, _, _ := newInterviewFixture()
	iv := &model.Interview{CandidateID: 7, Status: model.InterviewStatusScheduled}
	if err := ivRepo.Create(iv); err != nil {
		t.Fatal(err)
	}

	outcome := "Selected"
	_, err := svc.Update(iv.ID, dto.InterviewUpdateDTO{Outcome: &outcome})
	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != ErrorInvalid {
		t.Fatalf("got %v, want invalid before the interview completes", err)
	}

	iv.Status = model.InterviewStatusCompleted
	if err := ivRepo.Update(iv); err != nil {
		t.Fatal(err)
	}
	resp, err := svc.Update(iv.ID, dto.InterviewUpdateDTO{Outcome: &outcome})
	if err != nil {
		t.Fatalf("Update after completion: %v", err)
	}
	if resp.Outcome != "Selected" {
		t.Errorf("outcome = %q, want Selected", resp.Outcome)
	}
}
