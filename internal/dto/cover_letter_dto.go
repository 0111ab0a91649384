package dto

type CoverLetterRequest struct {
	FullName   string   `json:"full_name" binding:"required"`
	JobTitle   string   `json:"job_title" binding:"required"`
	Company    string   `json:"company" binding:"required"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

type CoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}
