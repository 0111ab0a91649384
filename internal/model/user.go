package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles. Incoming role strings are
// normalized through ParseRole at the API boundary; nothing else in the
// system compares raw role strings.
type Role string

const (
	RoleCandidate   Role = "candidate"
	RoleInterviewer Role = "interviewer"
	RoleAdmin       Role = "admin"
)

// ParseRole normalizes the free-form role strings the old clients send
// ("Candidate", "Admin", "Job Seeker") into a Role. Empty input defaults
// to RoleCandidate.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "candidate", "job seeker", "jobseeker":
		return RoleCandidate, nil
	case "interviewer":
		return RoleInterviewer, nil
	case "admin":
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// DisplayName returns the label the admin dashboard uses for a role.
func (r Role) DisplayName() string {
	switch r {
	case RoleCandidate:
		return "Job Seeker"
	case RoleInterviewer:
		return "Interviewer"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	FullName     string         `json:"full_name" gorm:"not null"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         Role           `json:"role" gorm:"not null;default:'candidate';index"`
	Status       string         `json:"status" gorm:"default:'Active'"`
	Phone        string         `json:"phone,omitempty"`
	Location     string         `json:"location,omitempty"`
	ProfilePct   int            `json:"profile_pct" gorm:"default:0"`
	JoinDate     time.Time      `json:"join_date" gorm:"autoCreateTime"`
	LastLogin    *time.Time     `json:"last_login,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
