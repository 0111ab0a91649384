package dto

import "time"

type ApplicationCreateDTO struct {
	JobID       uint     `json:"job_id" binding:"required"`
	CandidateID uint     `json:"candidate_id" binding:"required"`
	Phone       string   `json:"phone"`
	Location    string   `json:"location"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Bio         string   `json:"bio"`
	ResumeURL   string   `json:"resume_url"`
	CoverLetter string   `json:"cover_letter"`
}

// ApplicationUpdateDTO drives a status transition. Status must be a legal
// next state for the application's current status.
type ApplicationUpdateDTO struct {
	Status string `json:"status" binding:"required"`
}

type StatusEventDTO struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

type ApplicationResponseDTO struct {
	ID                uint             `json:"id"`
	JobID             uint             `json:"job_id"`
	CandidateID       uint             `json:"candidate_id"`
	ApplicantName     string           `json:"applicant_name"`
	ApplicantEmail    string           `json:"applicant_email"`
	ApplicantPhone    string           `json:"applicant_phone,omitempty"`
	ApplicantLocation string           `json:"applicant_location,omitempty"`
	JobTitle          string           `json:"job_title"`
	Company           string           `json:"company"`
	AppliedDate       time.Time        `json:"applied_date"`
	CurrentStatus     string           `json:"current_status"`
	History           []StatusEventDTO `json:"history"`
	Experience        string           `json:"experience,omitempty"`
	Skills            []string         `json:"skills,omitempty"`
	Bio               string           `json:"bio,omitempty"`
	ResumeURL         string           `json:"resume_url,omitempty"`
	CoverLetter       string           `json:"cover_letter,omitempty"`
}
