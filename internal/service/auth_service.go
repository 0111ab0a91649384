package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenSigner is injected so tests can stub token generation.
type TokenSigner func(userID uint, role model.Role, email string, ttl time.Duration) (string, error)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	signToken TokenSigner
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, signer TokenSigner) AuthService {
	return &authService{
		userRepo:  userRepo,
		signToken: signer,
		tokenTTL:  24 * time.Hour,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, NewInvalidError("Passwords do not match")
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, NewInvalidError(err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, NewConflictError("User already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		JoinDate:     s.now(),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.signToken(user.ID, user.Role, user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &dto.AuthResponse{
		Message: "Account created successfully",
		User:    userSummary(&user),
		Token:   token,
	}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password; do not leak which one it was.
			return nil, NewUnauthorizedError("Invalid credentials")
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewUnauthorizedError("Invalid credentials")
	}

	now := s.now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		// Login still succeeds; the activity panel just misses one touch.
		log.Warn().Err(err).Uint("userID", user.ID).Msg("Login: failed to update last login")
	}

	token, err := s.signToken(user.ID, user.Role, user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &dto.AuthResponse{
		Message: "Login successful",
		User:    userSummary(user),
		Token:   token,
	}, nil
}

func userSummary(u *model.User) dto.UserSummary {
	return dto.UserSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
