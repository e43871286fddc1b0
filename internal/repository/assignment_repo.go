package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/model"
)

// AssignmentRepository is the submission store access interface.
type AssignmentRepository interface {
	// Create inserts a submission. A second submission for the same
	// (roll number, code) pair fails with gorm.ErrDuplicatedKey via the
	// storage unique index; callers translate that into the domain error.
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByRollAndCode(ctx context.Context, rollNumber, code int) (*model.Assignment, error)
	// ListByCode returns submissions for a subject ascending by roll
	// number, without the file payload columns.
	ListByCode(ctx context.Context, code int) ([]model.Assignment, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates the GORM-backed AssignmentRepository.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByRollAndCode(ctx context.Context, rollNumber, code int) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Where("roll_number = ? AND code = ?", rollNumber, code).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) ListByCode(ctx context.Context, code int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Select("id", "roll_number", "code").
		Where("code = ?", code).
		Order("roll_number ASC").
		Find(&assignments).Error
	return assignments, err
}
