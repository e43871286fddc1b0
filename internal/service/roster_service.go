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

// ── roster errors ──

var (
	ErrFacultyExists = errors.New("faculty already exists")
	ErrNoFaculties   = errors.New("no faculties registered yet")
	ErrNoStudents    = errors.New("no students found for given semester")
)

// RosterService covers the admin-facing faculty/student roster operations
// plus the staff self-info lookups.
type RosterService interface {
	AddFaculty(ctx context.Context, req *dto.AddFacultyRequest) error
	FacultyByUsername(ctx context.Context, username string) (*dto.FacultyResponse, error)
	ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error)
	DeleteFaculty(ctx context.Context, id string) error
	AddStudent(ctx context.Context, req *dto.AddStudentRequest) error
	StudentsBySemester(ctx context.Context, semester int) ([]dto.StudentSummary, error)
	// FacultyName backs the faculty self-info endpoint.
	FacultyName(ctx context.Context, username string) (string, error)
	// AdminName backs the admin self-info endpoint.
	AdminName(ctx context.Context, username string) (string, error)
}

type rosterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRosterService creates the RosterService.
func NewRosterService(repo *repository.Repository, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, logger: logger}
}

func (s *rosterService) AddFaculty(ctx context.Context, req *dto.AddFacultyRequest) error {
	faculty := &model.Faculty{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	}

	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrFacultyExists
		}
		s.logger.Error("creating faculty failed", zap.String("username", req.Username), zap.Error(err))
		return err
	}
	return nil
}

func (s *rosterService) FacultyByUsername(ctx context.Context, username string) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("looking up faculty failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	return toFacultyResponse(faculty), nil
}

func (s *rosterService) ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("listing faculties failed", zap.Error(err))
		return nil, err
	}
	if len(faculties) == 0 {
		return nil, ErrNoFaculties
	}

	result := make([]dto.FacultyResponse, 0, len(faculties))
	for i := range faculties {
		result = append(result, *toFacultyResponse(&faculties[i]))
	}
	return result, nil
}

func (s *rosterService) DeleteFaculty(ctx context.Context, id string) error {
	rows, err := s.repo.Faculty.Delete(ctx, id)
	if err != nil {
		s.logger.Error("deleting faculty failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrFacultyNotFound
	}
	return nil
}

func (s *rosterService) AddStudent(ctx context.Context, req *dto.AddStudentRequest) error {
	return createStudent(ctx, s.repo, s.logger, req.RollNumber, req.Name, req.Semester, req.Password)
}

func (s *rosterService) StudentsBySemester(ctx context.Context, semester int) ([]dto.StudentSummary, error) {
	if semester < 1 || semester > 6 {
		return nil, ErrSemesterInvalid
	}

	students, err := s.repo.Student.ListBySemester(ctx, semester)
	if err != nil {
		s.logger.Error("listing students failed", zap.Int("semester", semester), zap.Error(err))
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrNoStudents
	}

	result := make([]dto.StudentSummary, 0, len(students))
	for _, st := range students {
		result = append(result, dto.StudentSummary{
			RollNumber: st.RollNumber,
			Name:       st.Name,
		})
	}
	return result, nil
}

func (s *rosterService) FacultyName(ctx context.Context, username string) (string, error) {
	faculty, err := s.repo.Faculty.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrFacultyNotFound
		}
		s.logger.Error("looking up faculty failed", zap.String("username", username), zap.Error(err))
		return "", err
	}
	return faculty.Name, nil
}

func (s *rosterService) AdminName(ctx context.Context, username string) (string, error) {
	admin, err := s.repo.Admin.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAdminNotFound
		}
		s.logger.Error("looking up admin failed", zap.String("username", username), zap.Error(err))
		return "", err
	}
	return admin.Name, nil
}

func toFacultyResponse(faculty *model.Faculty) *dto.FacultyResponse {
	return &dto.FacultyResponse{
		ID:       faculty.ID,
		Username: faculty.Username,
		Name:     faculty.Name,
	}
}
