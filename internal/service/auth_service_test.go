package service

import (
	"errors"
	"testing"

	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/pkg/jwt"

	"github.com/google/uuid"
)

type memAdminRepo struct {
	admins map[uuid.UUID]*model.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: make(map[uuid.UUID]*model.Admin)}
}

func (m *memAdminRepo) Create(a *model.Admin) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	m.admins[a.ID] = &cp
	return nil
}

func (m *memAdminRepo) FindByID(id uuid.UUID) (*model.Admin, error) {
	a, ok := m.admins[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAdminRepo) FindByUsername(username string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrAdminNotFound
}

func (m *memAdminRepo) Update(a *model.Admin) error {
	if _, ok := m.admins[a.ID]; !ok {
		return repository.ErrAdminNotFound
	}
	cp := *a
	m.admins[a.ID] = &cp
	return nil
}

func newAuthTestService(t *testing.T) (AuthService, *model.Admin, *jwt.Manager) {
	t.Helper()
	repo := newMemAdminRepo()
	admin := &model.Admin{Username: "admin"}
	if err := admin.SetPassword("admin123"); err != nil {
		t.Fatalf("set password failed: %v", err)
	}
	if err := repo.Create(admin); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	tokens := jwt.NewManager("test-secret", 1)
	return NewAuthService(repo, tokens), admin, tokens
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, admin, tokens := newAuthTestService(t)

	resp, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Username != "admin" {
		t.Errorf("unexpected username %s", resp.Username)
	}

	claims, err := tokens.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Errorf("token carries wrong admin ID")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login("nobody", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestUpdateUsernameReissuesToken(t *testing.T) {
	svc, admin, tokens := newAuthTestService(t)

	resp, err := svc.UpdateUsername(admin.ID, "admin123", "shopkeeper")
	if err != nil {
		t.Fatalf("update username failed: %v", err)
	}
	if resp.Username != "shopkeeper" {
		t.Errorf("username not updated")
	}

	claims, err := tokens.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("reissued token invalid: %v", err)
	}
	if claims.Username != "shopkeeper" {
		t.Errorf("token still carries the old username")
	}

	// Same name again is rejected.
	var ve ValidationError
	if _, err := svc.UpdateUsername(admin.ID, "admin123", "shopkeeper"); !errors.As(err, &ve) {
		t.Errorf("expected validation error for unchanged username, got %v", err)
	}
}

func TestUpdatePasswordRules(t *testing.T) {
	svc, admin, _ := newAuthTestService(t)

	var ve ValidationError
	if err := svc.UpdatePassword(admin.ID, "admin123", "short"); !errors.As(err, &ve) {
		t.Errorf("expected validation error for short password, got %v", err)
	}
	if err := svc.UpdatePassword(admin.ID, "admin123", "admin123"); !errors.As(err, &ve) {
		t.Errorf("expected validation error for unchanged password, got %v", err)
	}
	if err := svc.UpdatePassword(admin.ID, "wrong", "newpassword"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}

	if err := svc.UpdatePassword(admin.ID, "admin123", "newpassword"); err != nil {
		t.Fatalf("update password failed: %v", err)
	}
	if _, err := svc.Login("admin", "newpassword"); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
	if _, err := svc.Login("admin", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted")
	}
}
