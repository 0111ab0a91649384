package service

import (
	"fmt"

	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/model"
	"github.com/sahajranjan/jobportal/internal/repository"
	"github.com/xuri/excelize/v2"
)

// UserAdminService backs the admin user-management dashboard: activity,
// role counts, and the user export in JSON or Excel form.
type UserAdminService interface {
	Activity() ([]dto.UserActivityDTO, error)
	RoleCounts() (map[string]int, error)
	Export() ([]dto.UserExportDTO, error)
	ExportWorkbook() (*excelize.File, error)
}

type userAdminService struct {
	userRepo repository.UserRepository
	appRepo  repository.ApplicationRepository
}

func NewUserAdminService(userRepo repository.UserRepository, appRepo repository.ApplicationRepository) UserAdminService {
	return &userAdminService{userRepo: userRepo, appRepo: appRepo}
}

func (s *userAdminService) Activity() ([]dto.UserActivityDTO, error) {
	users, err := s.userRepo.FindAllByLastLogin()
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	counts, err := s.appRepo.CountPerCandidate()
	if err != nil {
		return nil, fmt.Errorf("counting applications: %w", err)
	}
	out := make([]dto.UserActivityDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserActivityDTO{
			ID:           u.ID,
			FullName:     u.FullName,
			Email:        u.Email,
			Role:         string(u.Role),
			Status:       u.Status,
			JoinDate:     u.JoinDate,
			LastLogin:    u.LastLogin,
			ProfilePct:   u.ProfilePct,
			Applications: counts[u.ID],
		})
	}
	return out, nil
}

// RoleCounts always returns all three display keys, zeroed when absent.
func (s *userAdminService) RoleCounts() (map[string]int, error) {
	counts, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, fmt.Errorf("counting roles: %w", err)
	}
	out := map[string]int{
		model.RoleCandidate.DisplayName():   0,
		model.RoleInterviewer.DisplayName(): 0,
		model.RoleAdmin.DisplayName():       0,
	}
	for role, n := range counts {
		out[role.DisplayName()] = n
	}
	return out, nil
}

func (s *userAdminService) Export() ([]dto.UserExportDTO, error) {
	users, err := s.userRepo.FindAllByCreatedAt()
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	out := make([]dto.UserExportDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserExportDTO{
			ID:         u.ID,
			Name:       u.FullName,
			Email:      u.Email,
			Role:       string(u.Role),
			Status:     u.Status,
			Phone:      u.Phone,
			Location:   u.Location,
			JoinDate:   u.JoinDate,
			LastLogin:  u.LastLogin,
			ProfilePct: u.ProfilePct,
		})
	}
	return out, nil
}

// ExportWorkbook renders the same export as an xlsx workbook.
func (s *userAdminService) ExportWorkbook() (*excelize.File, error) {
	users, err := s.Export()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Users"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Email", "Role", "Status", "Phone", "Location", "Join Date", "Last Login", "Profile %"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, u := range users {
		lastLogin := ""
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.Format("2006-01-02 15:04:05")
		}
		values := []interface{}{
			u.ID, u.Name, u.Email, u.Role, u.Status, u.Phone, u.Location,
			u.JoinDate.Format("2006-01-02"), lastLogin, u.ProfilePct,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}
