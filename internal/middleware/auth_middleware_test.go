package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Abiral12/Stock-Management-system/internal/model"
	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type stubAdminRepo struct {
	admin *model.Admin
}

func (s *stubAdminRepo) Create(a *model.Admin) error { return nil }
func (s *stubAdminRepo) Update(a *model.Admin) error { return nil }

func (s *stubAdminRepo) FindByID(id uuid.UUID) (*model.Admin, error) {
	if s.admin != nil && s.admin.ID == id {
		return s.admin, nil
	}
	return nil, repository.ErrAdminNotFound
}

func (s *stubAdminRepo) FindByUsername(username string) (*model.Admin, error) {
	if s.admin != nil && s.admin.Username == username {
		return s.admin, nil
	}
	return nil, repository.ErrAdminNotFound
}

func newAuthTestApp(tokens *jwt.Manager, repo repository.AdminRepository) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(tokens, repo), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":  true,
			"username": c.Locals("admin_username"),
		})
	})
	return app
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 1)
	app := newAuthTestApp(tokens, &stubAdminRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthRejectsMalformedHeader(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 1)
	app := newAuthTestApp(tokens, &stubAdminRepo{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRequireAuthRejectsDeletedAdmin(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 1)
	app := newAuthTestApp(tokens, &stubAdminRepo{}) // repo knows no admin

	token, err := tokens.GenerateToken(uuid.New(), "ghost")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for vanished admin, got %d", resp.StatusCode)
	}
}

func TestRequireAuthPassesValidToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 1)
	admin := &model.Admin{Username: "admin"}
	admin.ID = uuid.New()
	app := newAuthTestApp(tokens, &stubAdminRepo{admin: admin})

	token, err := tokens.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
