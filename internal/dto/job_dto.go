package dto

import "time"

type JobCreateDTO struct {
	Title         string   `json:"title" binding:"required"`
	Company       string   `json:"company" binding:"required"`
	Location      string   `json:"location"`
	Type          string   `json:"type"`
	SalaryMin     int      `json:"salary_min" binding:"min=0"`
	SalaryMax     int      `json:"salary_max" binding:"min=0"`
	ExperienceMin int      `json:"experience_min" binding:"min=0"`
	ExperienceMax int      `json:"experience_max" binding:"min=0"`
	Description   string   `json:"description"`
	Requirements  []string `json:"requirements"`
}

type JobUpdateDTO struct {
	Title         *string   `json:"title"`
	Company       *string   `json:"company"`
	Location      *string   `json:"location"`
	Type          *string   `json:"type"`
	SalaryMin     *int      `json:"salary_min"`
	SalaryMax     *int      `json:"salary_max"`
	ExperienceMin *int      `json:"experience_min"`
	ExperienceMax *int      `json:"experience_max"`
	Description   *string   `json:"description"`
	Requirements  *[]string `json:"requirements"`
}

type JobResponseDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	SalaryMin      int       `json:"salary_min"`
	SalaryMax      int       `json:"salary_max"`
	ExperienceMin  int       `json:"experience_min"`
	ExperienceMax  int       `json:"experience_max"`
	Description    string    `json:"description"`
	Requirements   []string  `json:"requirements"`
	ApplicantCount int       `json:"applicant_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ApplyRequest carries the applicant snapshot stored on the application.
type ApplyRequest struct {
	Phone       string   `json:"phone"`
	Location    string   `json:"location"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	Bio         string   `json:"bio"`
	ResumeURL   string   `json:"resume_url"`
	CoverLetter string   `json:"cover_letter"`
}
