package dto

import "time"

// QuestionCreateDTO is one question inside a test creation request.
type QuestionCreateDTO struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required,min=2"`
	Answer   int      `json:"answer" binding:"min=0"` // index into Options
}

type TestCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Category    string              `json:"category" binding:"required"`
	Difficulty  string              `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	Duration    int                 `json:"duration" binding:"required,gt=0"`
	Description string              `json:"description"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// TestUpdateDTO is a partial update; nil fields are left untouched.
type TestUpdateDTO struct {
	Title       *string              `json:"title"`
	Category    *string              `json:"category"`
	Difficulty  *string              `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Duration    *int                 `json:"duration" binding:"omitempty,gt=0"`
	Description *string              `json:"description"`
	Questions   *[]QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

type QuestionResponseDTO struct {
	ID          uint     `json:"id"`
	TestID      uint     `json:"test_id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	OrderInTest int      `json:"order_in_test"`
}

type TestResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Category    string                `json:"category"`
	Difficulty  string                `json:"difficulty"`
	Duration    int                   `json:"duration"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for the admin test list.
type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	Duration      int       `json:"duration"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type AssignTestRequest struct {
	TestID      uint `json:"testId" binding:"required"`
	CandidateID uint `json:"candidateId" binding:"required"`
}

// AssignedTestDTO is one assignment-ledger row with its test populated.
// Test is nil when the referenced test has since been deleted.
type AssignedTestDTO struct {
	ID          uint             `json:"id"`
	TestID      uint             `json:"test_id"`
	Test        *TestResponseDTO `json:"test,omitempty"`
	CandidateID uint             `json:"candidate_id"`
	Candidate   *UserSummary     `json:"candidate,omitempty"`
	AssignedBy  *uint            `json:"assigned_by,omitempty"`
	Status      string           `json:"status"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Score       *int             `json:"score,omitempty"`
	Total       int              `json:"total_questions,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

type SubmitTestRequest struct {
	AssignedTestID uint  `json:"assignedTestId" binding:"required"`
	Answers        []int `json:"answers" binding:"required"`
}

type AnswerResultDTO struct {
	Question string `json:"question"`
	Selected int    `json:"selected"`
	Correct  bool   `json:"correct"`
}

type SubmitTestResponse struct {
	Score      int               `json:"score"`
	Total      int               `json:"total"`
	Percentage int               `json:"percentage"`
	Passed     bool              `json:"passed"` // per-attempt label, 70% threshold
	Answers    []AnswerResultDTO `json:"answers"`
}

type EligibilityResponse struct {
	Eligible          bool `json:"eligible"`
	HighestPercentage int  `json:"highest_percentage"`
}
