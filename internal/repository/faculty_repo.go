package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/model"
)

// FacultyRepository is the faculty roster access interface.
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	GetByUsername(ctx context.Context, username string) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	// Delete removes one faculty row by id and reports how many rows
	// matched.
	Delete(ctx context.Context, id string) (int64, error)
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo creates the GORM-backed FacultyRepository.
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepo) GetByUsername(ctx context.Context, username string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) List(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&faculties).Error
	return faculties, err
}

func (r *facultyRepo) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Faculty{})
	return result.RowsAffected, result.Error
}
