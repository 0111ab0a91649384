package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AssignmentStatusAssigned  = "Assigned"
	AssignmentStatusCompleted = "Completed"
)

// AssignedTest binds a Test to a candidate. A row transitions
// Assigned -> Completed exactly once; Score, TotalQuestions and Answers are
// write-once at that transition and read-only afterwards.
type AssignedTest struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	TestID         uint           `json:"test_id" gorm:"not null;index"`
	Test           Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	CandidateID    uint           `json:"candidate_id" gorm:"not null;index"`
	Candidate      User           `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	AssignedByID   *uint          `json:"assigned_by,omitempty"`
	Status         string         `json:"status" gorm:"not null;default:'Assigned'"`
	StartedAt      *time.Time     `json:"started_at,omitempty"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	Score          *int           `json:"score,omitempty"`
	TotalQuestions int            `json:"total_questions"` // snapshot of question count at submission
	Answers        []AnswerResult `json:"answers,omitempty" gorm:"foreignKey:AssignedTestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// AnswerResult snapshots one graded answer. QuestionText is copied from the
// question at submission time so results survive later test edits or deletes.
type AnswerResult struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	AssignedTestID uint           `json:"assigned_test_id" gorm:"not null;index"`
	QuestionText   string         `json:"question" gorm:"type:text;not null"`
	Selected       int            `json:"selected"` // -1 when unanswered
	Correct        bool           `json:"correct"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
