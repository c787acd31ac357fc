package service

import (
	"errors"

	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	UpdateUsername(adminID uuid.UUID, currentPassword, newUsername string) (*LoginResponse, error)
	UpdatePassword(adminID uuid.UUID, currentPassword, newPassword string) error
}

type authService struct {
	adminRepo repository.AdminRepository
	tokens    *jwt.Manager
}

func NewAuthService(adminRepo repository.AdminRepository, tokens *jwt.Manager) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Username: admin.Username, Token: token}, nil
}

// UpdateUsername changes the admin's username after re-verifying the current
// password, and issues a fresh token carrying the new name.
func (s *authService) UpdateUsername(adminID uuid.UUID, currentPassword, newUsername string) (*LoginResponse, error) {
	if newUsername == "" {
		return nil, ValidationError("New username is required")
	}

	admin, err := s.adminRepo.FindByID(adminID)
	if err != nil {
		return nil, err
	}
	if !admin.CheckPassword(currentPassword) {
		return nil, ErrWrongPassword
	}
	if newUsername == admin.Username {
		return nil, ValidationError("New username must be different")
	}

	admin.Username = newUsername
	if err := s.adminRepo.Update(admin); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Username: admin.Username, Token: token}, nil
}

func (s *authService) UpdatePassword(adminID uuid.UUID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ValidationError("New password is required")
	}
	if len(newPassword) < 6 {
		return ValidationError("Password must be at least 6 characters")
	}

	admin, err := s.adminRepo.FindByID(adminID)
	if err != nil {
		return err
	}
	if !admin.CheckPassword(currentPassword) {
		return ErrWrongPassword
	}
	if admin.CheckPassword(newPassword) {
		return ValidationError("New password must be different from current password")
	}

	if err := admin.SetPassword(newPassword); err != nil {
		return err
	}
	return s.adminRepo.Update(admin)
}
