package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationStatus is the closed set of application states. The old
// history-as-array pattern becomes an explicit machine: CurrentStatus is
// authoritative, History is an append-only audit log, and the two only
// change together through Application.Transition.
type ApplicationStatus string

const (
	ApplicationStatusNew       ApplicationStatus = "New"
	ApplicationStatusReviewed  ApplicationStatus = "Reviewed"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusHired     ApplicationStatus = "Hired"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusNew:       {ApplicationStatusReviewed, ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusRejected},
	ApplicationStatusReviewed:  {ApplicationStatusInterview, ApplicationStatusHired, ApplicationStatusRejected},
	ApplicationStatusInterview: {ApplicationStatusHired, ApplicationStatusRejected},
}

// CanTransition reports whether to is a legal next state.
func (s ApplicationStatus) CanTransition(to ApplicationStatus) bool {
	for _, next := range applicationTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationStatusNew, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusHired, ApplicationStatusRejected:
		return ApplicationStatus(s), true
	}
	return "", false
}

type Application struct {
	ID                uint                         `gorm:"primarykey" json:"id"`
	JobID             uint                         `json:"job_id" gorm:"not null;index"`
	Job               Job                          `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CandidateID       uint                         `json:"candidate_id" gorm:"not null;index"`
	ApplicantName     string                       `json:"applicant_name"`
	ApplicantEmail    string                       `json:"applicant_email" gorm:"index"`
	ApplicantPhone    string                       `json:"applicant_phone"`
	ApplicantLocation string                       `json:"applicant_location"`
	JobTitle          string                       `json:"job_title"`
	Company           string                       `json:"company"`
	AppliedDate       time.Time                    `json:"applied_date"`
	CurrentStatus     ApplicationStatus            `json:"current_status" gorm:"not null;default:'New'"`
	History           []ApplicationStatusEvent     `json:"history,omitempty" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	Experience        string                       `json:"experience"`
	Skills            datatypes.JSONSlice[string]  `json:"skills"`
	Bio               string                       `json:"bio" gorm:"type:text"`
	ResumeURL         string                       `json:"resume_url"`
	CoverLetter       string                       `json:"cover_letter" gorm:"type:text"`
	CreatedAt         time.Time                    `json:"created_at"`
	UpdatedAt         time.Time                    `json:"updated_at"`
	DeletedAt         gorm.DeletedAt               `gorm:"index" json:"-"`
}

type ApplicationStatusEvent struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	ApplicationID uint              `json:"application_id" gorm:"not null;index"`
	Status        ApplicationStatus `json:"status" gorm:"not null"`
	Date          time.Time         `json:"date" gorm:"not null"`
}

// Transition moves the application to next, appending the audit entry in the
// same mutation so CurrentStatus always equals the last history entry.
func (a *Application) Transition(next ApplicationStatus, at time.Time) bool {
	if !a.CurrentStatus.CanTransition(next) {
		return false
	}
	a.CurrentStatus = next
	a.History = append(a.History, ApplicationStatusEvent{ApplicationID: a.ID, Status: next, Date: at})
	return true
}
