package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/model"
)

// StudentRepository is the student data access interface.
type StudentRepository interface {
	// Create persists the student together with its seeded subject rows.
	Create(ctx context.Context, student *model.Student) error
	GetByRoll(ctx context.Context, rollNumber int) (*model.Student, error)
	ListBySemester(ctx context.Context, semester int) ([]model.Student, error)
	// ListNotSubmitted returns students enrolled in code who have not
	// submitted, ascending by roll number.
	ListNotSubmitted(ctx context.Context, code int) ([]model.Student, error)
	// MarkSubmitted flips the is_submitted flag for one (student, code)
	// progress row and reports how many rows matched. Zero is not an error:
	// the caller decides what a no-match means.
	MarkSubmitted(ctx context.Context, rollNumber, code int) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates the GORM-backed StudentRepository.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByRoll(ctx context.Context, rollNumber int) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Subjects", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("roll_number = ?", rollNumber).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) ListBySemester(ctx context.Context, semester int) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("semester = ?", semester).
		Order("roll_number ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) ListNotSubmitted(ctx context.Context, code int) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Joins("JOIN student_subjects ON student_subjects.roll_number = students.roll_number").
		Where("student_subjects.code = ? AND student_subjects.is_submitted = ?", code, false).
		Order("students.roll_number ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) MarkSubmitted(ctx context.Context, rollNumber, code int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SubjectProgress{}).
		Where("roll_number = ? AND code = ?", rollNumber, code).
		Update("is_submitted", true)
	return result.RowsAffected, result.Error
}
