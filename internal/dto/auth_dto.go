package dto

import "time"

type RegisterRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role"` // defaults to candidate, normalized server-side
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the public shape of a user returned by auth endpoints.
type UserSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}

// UserActivityDTO feeds the admin "recent user activity" panel.
type UserActivityDTO struct {
	ID           uint       `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	JoinDate     time.Time  `json:"join_date"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ProfilePct   int        `json:"profile_pct"`
	Applications int        `json:"applications"`
}

type UserExportDTO struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	Phone      string     `json:"phone,omitempty"`
	Location   string     `json:"location,omitempty"`
	JoinDate   time.Time  `json:"join_date"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	ProfilePct int        `json:"profile_pct"`
}
