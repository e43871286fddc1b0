package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/model"
)

// AdminRepository is the admin account access interface.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo creates the GORM-backed AdminRepository.
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
