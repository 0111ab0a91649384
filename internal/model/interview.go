package model

import (
	"time"

	"gorm.io/gorm"
)

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "Scheduled"
	InterviewStatusInProgress InterviewStatus = "In Progress"
	InterviewStatusCompleted  InterviewStatus = "Completed"
	InterviewStatusCancelled  InterviewStatus = "Cancelled"
)

var interviewTransitions = map[InterviewStatus][]InterviewStatus{
	InterviewStatusScheduled:  {InterviewStatusInProgress, InterviewStatusCancelled},
	InterviewStatusInProgress: {InterviewStatusCompleted, InterviewStatusCancelled},
}

func (s InterviewStatus) CanTransition(to InterviewStatus) bool {
	for _, next := range interviewTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseInterviewStatus(s string) (InterviewStatus, bool) {
	switch InterviewStatus(s) {
	case InterviewStatusScheduled, InterviewStatusInProgress,
		InterviewStatusCompleted, InterviewStatusCancelled:
		return InterviewStatus(s), true
	}
	return "", false
}

type Interview struct {
	ID              uint                   `gorm:"primarykey" json:"id"`
	CandidateID     uint                   `json:"candidate_id" gorm:"not null;index"`
	Candidate       User                   `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	InterviewerID   uint                   `json:"interviewer_id" gorm:"not null;index"`
	Interviewer     User                   `json:"interviewer,omitempty" gorm:"foreignKey:InterviewerID"`
	JobID           uint                   `json:"job_id" gorm:"not null;index"`
	Job             Job                    `json:"job,omitempty" gorm:"foreignKey:JobID"`
	ApplicationID   uint                   `json:"application_id" gorm:"not null;index"`
	ScheduledAt     time.Time              `json:"scheduled_at" gorm:"not null"`
	Type            string                 `json:"type"`     // "Video Call", "Phone Call", "In-Person"
	Duration        int                    `json:"duration"` // minutes
	Status          InterviewStatus        `json:"status" gorm:"not null;default:'Scheduled'"`
	History         []InterviewStatusEvent `json:"history,omitempty" gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
	Outcome         string                 `json:"outcome"` // "Pending", "Passed", "Failed", "On Hold"
	Notes           string                 `json:"notes" gorm:"type:text"`
	Feedback        string                 `json:"feedback" gorm:"type:text"`
	InterviewerName string                 `json:"interviewer_name"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	DeletedAt       gorm.DeletedAt         `gorm:"index" json:"-"`
}

type InterviewStatusEvent struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	InterviewID uint            `json:"interview_id" gorm:"not null;index"`
	Status      InterviewStatus `json:"status" gorm:"not null"`
	Date        time.Time       `json:"date" gorm:"not null"`
}

// Transition mirrors Application.Transition: status and audit entry move
// together or not at all.
func (i *Interview) Transition(next InterviewStatus, at time.Time) bool {
	if !i.Status.CanTransition(next) {
		return false
	}
	i.Status = next
	i.History = append(i.History, InterviewStatusEvent{InterviewID: i.ID, Status: next, Date: at})
	return true
}
