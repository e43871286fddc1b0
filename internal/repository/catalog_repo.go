package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/model"
)

// CatalogRepository reads the per-semester subject catalog.
type CatalogRepository interface {
	ListBySemester(ctx context.Context, semester int) ([]model.SemesterSubject, error)
	ListAll(ctx context.Context) ([]model.SemesterSubject, error)
}

type catalogRepo struct {
	db *gorm.DB
}

// NewCatalogRepo creates the GORM-backed CatalogRepository.
func NewCatalogRepo(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListBySemester(ctx context.Context, semester int) ([]model.SemesterSubject, error) {
	var subjects []model.SemesterSubject
	err := r.db.WithContext(ctx).
		Where("semester = ?", semester).
		Order("position ASC").
		Find(&subjects).Error
	return subjects, err
}

func (r *catalogRepo) ListAll(ctx context.Context) ([]model.SemesterSubject, error) {
	var subjects []model.SemesterSubject
	err := r.db.WithContext(ctx).
		Order("semester ASC, position ASC").
		Find(&subjects).Error
	return subjects, err
}
