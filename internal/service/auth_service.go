package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/model"
	"github.com/onmedicines/asaserver/internal/repository"
	"github.com/onmedicines/asaserver/pkg/credentials"
	"github.com/onmedicines/asaserver/pkg/jwt"
	"github.com/onmedicines/asaserver/pkg/redis"
)

// ── auth errors ──

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStudentExists      = errors.New("student with this roll number already exists")
	ErrStudentNotFound    = errors.New("student not found")
	ErrFacultyNotFound    = errors.New("faculty does not exist")
	ErrAdminNotFound      = errors.New("admin does not exist")
	ErrSemesterInvalid    = errors.New("semester does not exist")
)

// AuthService covers registration, login for all three roles, and logout.
type AuthService interface {
	// RegisterStudent creates the student, seeds its subjects from the
	// semester catalog and returns a student token.
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (string, error)
	StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (string, error)
	FacultyLogin(ctx context.Context, req *dto.StaffLoginRequest) (string, error)
	AdminLogin(ctx context.Context, req *dto.StaffLoginRequest) (string, error)
	// Logout revokes the token's jti until it would have expired anyway.
	// Without Redis this is a no-op.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	repo     *repository.Repository
	jwtMgr   *jwt.Manager
	verifier credentials.Verifier
	rdb      *redis.Client
	logger   *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	verifier credentials.Verifier,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		jwtMgr:   jwtMgr,
		verifier: verifier,
		rdb:      rdb,
		logger:   logger,
	}
}

func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (string, error) {
	if err := createStudent(ctx, s.repo, s.logger, req.RollNumber, req.Name, req.Semester, req.Password); err != nil {
		return "", err
	}

	token, err := s.jwtMgr.IssueStudentToken(req.RollNumber)
	if err != nil {
		// The record exists at this point; the caller can still log in.
		s.logger.Error("issuing token after registration failed",
			zap.Int("rollNumber", req.RollNumber),
			zap.Error(err),
		)
		return "", err
	}
	return token, nil
}

func (s *authService) StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (string, error) {
	student, err := s.repo.Student.GetByRoll(ctx, req.RollNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrStudentNotFound
		}
		s.logger.Error("looking up student failed", zap.Int("rollNumber", req.RollNumber), zap.Error(err))
		return "", err
	}

	if err := s.verifier.Verify(student.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtMgr.IssueStudentToken(student.RollNumber)
}

func (s *authService) FacultyLogin(ctx context.Context, req *dto.StaffLoginRequest) (string, error) {
	faculty, err := s.repo.Faculty.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrFacultyNotFound
		}
		s.logger.Error("looking up faculty failed", zap.String("username", req.Username), zap.Error(err))
		return "", err
	}

	if err := s.verifier.Verify(faculty.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtMgr.IssueStaffToken(faculty.Username, jwt.RoleFaculty)
}

func (s *authService) AdminLogin(ctx context.Context, req *dto.StaffLoginRequest) (string, error) {
	admin, err := s.repo.Admin.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAdminNotFound
		}
		s.logger.Error("looking up admin failed", zap.String("username", req.Username), zap.Error(err))
		return "", err
	}

	if err := s.verifier.Verify(admin.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtMgr.IssueStaffToken(admin.Username, jwt.RoleAdmin)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// createStudent validates semester bounds and roll uniqueness, seeds the
// subject list from the catalog and persists the record. Shared by student
// self-registration and the admin roster path.
func createStudent(ctx context.Context, repo *repository.Repository, logger *zap.Logger, rollNumber int, name string, semester int, password string) error {
	if semester < 1 || semester > 6 {
		return ErrSemesterInvalid
	}

	_, err := repo.Student.GetByRoll(ctx, rollNumber)
	if err == nil {
		return ErrStudentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("looking up student failed", zap.Int("rollNumber", rollNumber), zap.Error(err))
		return err
	}

	catalog, err := repo.Catalog.ListBySemester(ctx, semester)
	if err != nil {
		logger.Error("reading subject catalog failed", zap.Int("semester", semester), zap.Error(err))
		return err
	}
	if len(catalog) == 0 {
		return ErrSemesterInvalid
	}

	subjects := make([]model.SubjectProgress, 0, len(catalog))
	for _, entry := range catalog {
		subjects = append(subjects, model.SubjectProgress{
			RollNumber:  rollNumber,
			Name:        entry.Name,
			Code:        entry.Code,
			IsSubmitted: false,
			Position:    entry.Position,
		})
	}

	student := &model.Student{
		RollNumber: rollNumber,
		Name:       name,
		Semester:   semester,
		Password:   password,
		Subjects:   subjects,
	}

	if err := repo.Student.Create(ctx, student); err != nil {
		// A concurrent registration for the same roll loses on the primary
		// key, not on the read above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrStudentExists
		}
		logger.Error("creating student failed", zap.Int("rollNumber", rollNumber), zap.Error(err))
		return err
	}

	return nil
}
