package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/model"
	"github.com/onmedicines/asaserver/internal/repository"
)

// StudentService serves student profiles with their subject progress.
type StudentService interface {
	// GetByRoll returns the profile (password omitted) with subjects in
	// catalog order. Backs the student dashboard and the faculty lookup.
	GetByRoll(ctx context.Context, rollNumber int) (*dto.StudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates the StudentService.
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) GetByRoll(ctx context.Context, rollNumber int) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByRoll(ctx, rollNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("looking up student failed", zap.Int("rollNumber", rollNumber), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	subjects := make([]dto.SubjectProgressResponse, 0, len(student.Subjects))
	for _, sub := range student.Subjects {
		subjects = append(subjects, dto.SubjectProgressResponse{
			Name:        sub.Name,
			Code:        sub.Code,
			IsSubmitted: sub.IsSubmitted,
		})
	}

	return &dto.StudentResponse{
		RollNumber: student.RollNumber,
		Name:       student.Name,
		Semester:   student.Semester,
		Subjects:   subjects,
	}
}
