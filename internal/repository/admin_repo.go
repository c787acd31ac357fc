package repository

import (
	"errors"

	"github.com/Abiral12/Stock-Management-system/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	Create(admin *model.Admin) error
	FindByID(id uuid.UUID) (*model.Admin, error)
	FindByUsername(username string) (*model.Admin, error)
	Update(admin *model.Admin) error
}

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db}
}

func (r *adminRepo) Create(admin *model.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepo) FindByID(id uuid.UUID) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	return &admin, err
}

func (r *adminRepo) FindByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.First(&admin, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	return &admin, err
}

func (r *adminRepo) Update(admin *model.Admin) error {
	return r.db.Save(admin).Error
}
