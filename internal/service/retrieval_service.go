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

// ── retrieval errors ──

var (
	ErrAssignmentNotFound = errors.New("assignment not submitted")
	// ErrAllSubmitted signals an empty not-submitted listing. It is a
	// domain outcome riding the error channel, not a fault.
	ErrAllSubmitted = errors.New("all registered students have submitted")
)

// RetrievalService serves stored submissions and the per-subject
// submitted / not-submitted listings.
type RetrievalService interface {
	// FetchForStudent returns the submission owned by rollNumber.
	FetchForStudent(ctx context.Context, rollNumber, code int) (*model.Assignment, error)
	// FetchForFaculty returns any student's submission; faculty principals
	// have no ownership restriction.
	FetchForFaculty(ctx context.Context, rollNumber, code int) (*model.Assignment, error)
	// ListSubmitted returns who has submitted for code, roll ascending.
	ListSubmitted(ctx context.Context, code int) ([]dto.SubmittedAssignment, error)
	// ListNotSubmitted returns who has not, roll ascending; an empty result
	// is ErrAllSubmitted.
	ListNotSubmitted(ctx context.Context, code int) ([]dto.NotSubmittedStudent, error)
}

type retrievalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRetrievalService creates the RetrievalService.
func NewRetrievalService(repo *repository.Repository, logger *zap.Logger) RetrievalService {
	return &retrievalService{repo: repo, logger: logger}
}

func (s *retrievalService) FetchForStudent(ctx context.Context, rollNumber, code int) (*model.Assignment, error) {
	return s.fetch(ctx, rollNumber, code)
}

func (s *retrievalService) FetchForFaculty(ctx context.Context, rollNumber, code int) (*model.Assignment, error) {
	return s.fetch(ctx, rollNumber, code)
}

func (s *retrievalService) fetch(ctx context.Context, rollNumber, code int) (*model.Assignment, error) {
	assignment, err := s.repo.Assignment.GetByRollAndCode(ctx, rollNumber, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("fetching submission failed",
			zap.Int("rollNumber", rollNumber),
			zap.Int("code", code),
			zap.Error(err),
		)
		return nil, err
	}
	return assignment, nil
}

func (s *retrievalService) ListSubmitted(ctx context.Context, code int) ([]dto.SubmittedAssignment, error) {
	assignments, err := s.repo.Assignment.ListByCode(ctx, code)
	if err != nil {
		s.logger.Error("listing submissions failed", zap.Int("code", code), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SubmittedAssignment, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, dto.SubmittedAssignment{
			RollNumber: a.RollNumber,
			Code:       a.Code,
		})
	}
	return result, nil
}

func (s *retrievalService) ListNotSubmitted(ctx context.Context, code int) ([]dto.NotSubmittedStudent, error) {
	students, err := s.repo.Student.ListNotSubmitted(ctx, code)
	if err != nil {
		s.logger.Error("listing pending students failed", zap.Int("code", code), zap.Error(err))
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrAllSubmitted
	}

	result := make([]dto.NotSubmittedStudent, 0, len(students))
	for _, st := range students {
		result = append(result, dto.NotSubmittedStudent{
			RollNumber: st.RollNumber,
			Name:       st.Name,
		})
	}
	return result, nil
}
