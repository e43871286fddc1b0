package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/onmedicines/asaserver/internal/model"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int]*model.Student

	markErr error // injected MarkSubmitted failure
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.RollNumber]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.students[student.RollNumber] = student
	return nil
}

func (m *mockStudentRepo) GetByRoll(_ context.Context, rollNumber int) (*model.Student, error) {
	if s, ok := m.students[rollNumber]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) ListBySemester(_ context.Context, semester int) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if s.Semester == semester {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RollNumber < result[j].RollNumber
	})
	return result, nil
}

func (m *mockStudentRepo) ListNotSubmitted(_ context.Context, code int) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		for _, sub := range s.Subjects {
			if sub.Code == code && !sub.IsSubmitted {
				result = append(result, *s)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RollNumber < result[j].RollNumber
	})
	return result, nil
}

func (m *mockStudentRepo) MarkSubmitted(_ context.Context, rollNumber, code int) (int64, error) {
	if m.markErr != nil {
		return 0, m.markErr
	}
	s, ok := m.students[rollNumber]
	if !ok {
		return 0, nil
	}
	var rows int64
	for i := range s.Subjects {
		if s.Subjects[i].Code == code {
			s.Subjects[i].IsSubmitted = true
			rows++
		}
	}
	return rows, nil
}

// ── Mock AssignmentRepository ──

type rollCode struct {
	roll int
	code int
}

type mockAssignmentRepo struct {
	assignments map[rollCode]*model.Assignment

	createErr error // injected Create failure (non-duplicate)
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[rollCode]*model.Assignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	if m.createErr != nil {
		return m.createErr
	}
	key := rollCode{assignment.RollNumber, assignment.Code}
	if _, ok := m.assignments[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.assignments[key] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByRollAndCode(_ context.Context, rollNumber, code int) (*model.Assignment, error) {
	if a, ok := m.assignments[rollCode{rollNumber, code}]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListByCode(_ context.Context, code int) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.Code == code {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RollNumber < result[j].RollNumber
	})
	return result, nil
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	faculties map[string]*model.Faculty // keyed by username
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{faculties: make(map[string]*model.Faculty)}
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	if _, ok := m.faculties[faculty.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	if faculty.ID == "" {
		faculty.ID = "fac-" + faculty.Username
	}
	m.faculties[faculty.Username] = faculty
	return nil
}

func (m *mockFacultyRepo) GetByUsername(_ context.Context, username string) (*model.Faculty, error) {
	if f, ok := m.faculties[username]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(_ context.Context) ([]model.Faculty, error) {
	var result []model.Faculty
	for _, f := range m.faculties {
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Username < result[j].Username
	})
	return result, nil
}

func (m *mockFacultyRepo) Delete(_ context.Context, id string) (int64, error) {
	for username, f := range m.faculties {
		if f.ID == id {
			delete(m.faculties, username)
			return 1, nil
		}
	}
	return 0, nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	if a, ok := m.admins[username]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock CatalogRepository ──

type mockCatalogRepo struct {
	entries []model.SemesterSubject
}

func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		entries: []model.SemesterSubject{
			{Semester: 1, Name: "Engineering Mathematics I", Code: 101, Position: 1},
			{Semester: 1, Name: "Applied Physics", Code: 102, Position: 2},
			{Semester: 2, Name: "Engineering Mathematics II", Code: 201, Position: 1},
			{Semester: 2, Name: "Data Structures", Code: 202, Position: 2},
		},
	}
}

func (m *mockCatalogRepo) ListBySemester(_ context.Context, semester int) ([]model.SemesterSubject, error) {
	var result []model.SemesterSubject
	for _, e := range m.entries {
		if e.Semester == semester {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockCatalogRepo) ListAll(_ context.Context) ([]model.SemesterSubject, error) {
	result := make([]model.SemesterSubject, len(m.entries))
	copy(result, m.entries)
	return result, nil
}
