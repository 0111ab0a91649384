package dto

import "time"

type InterviewCreateDTO struct {
	CandidateID   uint      `json:"candidate_id" binding:"required"`
	InterviewerID uint      `json:"interviewer_id" binding:"required"`
	JobID         uint      `json:"job_id" binding:"required"`
	ApplicationID uint      `json:"application_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	Type          string    `json:"type" binding:"required,oneof='Video Call' 'Phone Call' 'In-Person'"`
	Duration      int       `json:"duration" binding:"required,gt=0"`
	Notes         string    `json:"notes"`
}

// InterviewUpdateDTO: any nil field is untouched. Status changes go through
// the interview state machine; Outcome/Feedback are only writable once the
// interview is Completed.
type InterviewUpdateDTO struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Type        *string    `json:"type" binding:"omitempty,oneof='Video Call' 'Phone Call' 'In-Person'"`
	Duration    *int       `json:"duration" binding:"omitempty,gt=0"`
	Status      *string    `json:"status"`
	Outcome     *string    `json:"outcome"`
	Notes       *string    `json:"notes"`
	Feedback    *string    `json:"feedback"`
}

type InterviewResponseDTO struct {
	ID              uint             `json:"id"`
	CandidateID     uint             `json:"candidate_id"`
	InterviewerID   uint             `json:"interviewer_id"`
	JobID           uint             `json:"job_id"`
	ApplicationID   uint             `json:"application_id"`
	ScheduledAt     time.Time        `json:"scheduled_at"`
	Type            string           `json:"type"`
	Duration        int              `json:"duration"`
	Status          string           `json:"status"`
	History         []StatusEventDTO `json:"history"`
	Outcome         string           `json:"outcome,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Feedback        string           `json:"feedback,omitempty"`
	InterviewerName string           `json:"interviewer_name,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}
