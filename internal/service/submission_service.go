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

// ── submission errors ──

var (
	ErrSubmissionInvalid      = errors.New("file or code missing")
	ErrDuplicateSubmission    = errors.New("assignment already exists")
	ErrSubmissionInconsistent = errors.New("submission could not be completed")
)

// SubmissionService coordinates storing a submission and flipping the
// student's subject-progress flag.
type SubmissionService interface {
	// Submit stores the file for (rollNumber, code) and marks the matching
	// subject as submitted. rollNumber must come from a verified token, not
	// from client input.
	Submit(ctx context.Context, rollNumber, code int, file *dto.FileUpload) error
}

type submissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubmissionService creates the SubmissionService.
func NewSubmissionService(repo *repository.Repository, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, logger: logger}
}

// Submit runs both writes inside one transaction so a stored submission and
// its progress flag cannot diverge. Duplicate detection is left entirely to
// the storage unique index on (roll_number, code): two concurrent submits
// cannot both pass, and there is no check-then-insert window.
func (s *submissionService) Submit(ctx context.Context, rollNumber, code int, file *dto.FileUpload) error {
	if file == nil || file.Name == "" || code <= 0 {
		return ErrSubmissionInvalid
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("opening submission transaction failed", zap.Error(err))
		return err
	}
	txRepo := s.repo.WithTx(tx)

	assignment := &model.Assignment{
		RollNumber:   rollNumber,
		Code:         code,
		FileName:     file.Name,
		FileData:     file.Data,
		FileMimetype: file.Mimetype,
		FileSize:     file.Size,
	}

	if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSubmission
		}
		s.logger.Error("storing submission failed",
			zap.Int("rollNumber", rollNumber),
			zap.Int("code", code),
			zap.Error(err),
		)
		return err
	}

	rows, err := txRepo.Student.MarkSubmitted(ctx, rollNumber, code)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("marking subject submitted failed",
			zap.Int("rollNumber", rollNumber),
			zap.Int("code", code),
			zap.Error(err),
		)
		return ErrSubmissionInconsistent
	}
	if rows == 0 {
		// The student has no progress row for this code. The submission is
		// still accepted; the flag update is a no-op, surfaced here instead
		// of passing silently.
		s.logger.Warn("submission stored for a code outside the student's subjects",
			zap.Int("rollNumber", rollNumber),
			zap.Int("code", code),
		)
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("committing submission failed",
				zap.Int("rollNumber", rollNumber),
				zap.Int("code", code),
				zap.Error(err),
			)
			return ErrSubmissionInconsistent
		}
	}

	return nil
}
