package service

import (
	"testing"
	"time"

	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
)

func newApplicationFixture() (ApplicationService, *stubApplicationRepo, *stubJobRepo, *stubUserRepo) {
	appRepo := newStubApplicationRepo()
	jobRepo := newStubJobRepo()
	userRepo := newStubUserRepo()
	return NewApplicationService(appRepo, jobRepo, userRepo), appRepo, jobRepo, userRepo
}

func seededApplication(appRepo *stubApplicationRepo, status model.ApplicationStatus) *model.Application {
	return appRepo.add(model.Application{
		JobID:         1,
		CandidateID:   7,
		JobTitle:      "Backend Engineer",
		CurrentStatus: status,
		History: []model.ApplicationStatusEvent{
			{Status: model.ApplicationStatusNew, Date: time.Now().Add(-time.Hour)},
		},
	})
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	svc, appRepo, _, _ := newApplicationFixture()
	app := seededApplication(appRepo, model.ApplicationStatusNew)

	resp, err := svc.UpdateStatus(app.ID, dto.ApplicationUpdateDTO{Status: "Reviewed"})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if resp.CurrentStatus != "Reviewed" {
		t.Errorf("status = %q, want Reviewed", resp.CurrentStatus)
	}
	if len(resp.History) != 2 {
		t.Fatalf("got %d history events, want 2", len(resp.History))
	}
	if resp.History[len(resp.History)-1].Status != resp.CurrentStatus {
		t.Error("current status must equal the last history entry")
	}
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	svc, appRepo, _, _ := newApplicationFixture()
	app := seededApplication(appRepo, model.ApplicationStatusHired)

	_, err := svc.UpdateStatus(app.ID, dto.ApplicationUpdateDTO{Status: "Reviewed"})
	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != ErrorInvalid {
		t.Fatalf("got %v, want invalid for Hired -> Reviewed", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, appRepo, _, _ := newApplicationFixture()
	app := seededApplication(appRepo, model.ApplicationStatusNew)

	_, err := svc.UpdateStatus(app.ID, dto.ApplicationUpdateDTO{Status: "Archived"})
	svcErr, ok := AsServiceError(err)
	if !ok || svcErr.Code != ErrorInvalid {
		t.Fatalf("got %v, want invalid", err)
	}
}

func TestAdminCreateSkipsEligibilityGate(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	job := jobRepo.add(model.Job{Title: "Backend Engineer", Company: "Acme"})
	userRepo.add(model.User{ID: 7, FullName: "Ada Lovelace", Email: "ada@example.com", Role: model.RoleCandidate})

	// No completed mock test exists; the admin console may still file one.
	resp, err := svc.Create(dto.ApplicationCreateDTO{JobID: job.ID, CandidateID: 7})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.CurrentStatus != string(model.ApplicationStatusNew) {
		t.Errorf("status = %q, want New", resp.CurrentStatus)
	}
}

func TestListFiltersByCandidate(t *testing.T) {
	svc, appRepo, _, _ := newApplicationFixture()
	appRepo.add(model.Application{JobID: 1, CandidateID: 7, CurrentStatus: model.ApplicationStatusNew})
	appRepo.add(model.Application{JobID: 2, CandidateID: 8, CurrentStatus: model.ApplicationStatusNew})

	all, err := svc.List(nil)
	if err != nil {
		t.Fatalf("List(nil): %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d applications, want 2", len(all))
	}

	candidateID := uint(7)
	mine, err := svc.List(&candidateID)
	if err != nil {
		t.Fatalf("List(7): %v", err)
	}
	if len(mine) != 1 || mine[0].CandidateID != 7 {
		t.Errorf("got %+v, want only candidate 7's application", mine)
	}
}
