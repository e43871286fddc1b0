package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/model"
	"github.com/onmedicines/asaserver/internal/repository"
)

func newRosterFixture() (RosterService, *mockStudentRepo, *mockFacultyRepo, *mockAdminRepo) {
	students := newMockStudentRepo()
	faculties := newMockFacultyRepo()
	admins := newMockAdminRepo()
	repo := &repository.Repository{
		Student: students,
		Faculty: faculties,
		Admin:   admins,
		Catalog: newMockCatalogRepo(),
	}
	return NewRosterService(repo, zap.NewNop()), students, faculties, admins
}

func TestAddFaculty(t *testing.T) {
	svc, _, faculties, _ := newRosterFixture()

	req := &dto.AddFacultyRequest{Name: "J. Smith", Username: "jsmith", Password: "secret"}
	if err := svc.AddFaculty(context.Background(), req); err != nil {
		t.Fatalf("AddFaculty returned error: %v", err)
	}
	if _, ok := faculties.faculties["jsmith"]; !ok {
		t.Fatal("faculty was not created")
	}

	if err := svc.AddFaculty(context.Background(), req); !errors.Is(err, ErrFacultyExists) {
		t.Errorf("duplicate AddFaculty error = %v, want ErrFacultyExists", err)
	}
}

func TestFacultyByUsername(t *testing.T) {
	svc, _, faculties, _ := newRosterFixture()
	faculties.faculties["jsmith"] = &model.Faculty{
		ID:       "fac-jsmith",
		Username: "jsmith",
		Name:     "J. Smith",
		Password: "secret",
	}

	faculty, err := svc.FacultyByUsername(context.Background(), "jsmith")
	if err != nil {
		t.Fatalf("FacultyByUsername returned error: %v", err)
	}
	if faculty.Username != "jsmith" || faculty.Name != "J. Smith" || faculty.ID != "fac-jsmith" {
		t.Errorf("unexpected response: %+v", faculty)
	}

	if _, err := svc.FacultyByUsername(context.Background(), "ghost"); !errors.Is(err, ErrFacultyNotFound) {
		t.Errorf("unknown username: error = %v, want ErrFacultyNotFound", err)
	}
}

func TestListFaculties(t *testing.T) {
	svc, _, faculties, _ := newRosterFixture()

	if _, err := svc.ListFaculties(context.Background()); !errors.Is(err, ErrNoFaculties) {
		t.Errorf("empty roster: error = %v, want ErrNoFaculties", err)
	}

	faculties.faculties["bjones"] = &model.Faculty{ID: "fac-bjones", Username: "bjones", Name: "B. Jones"}
	faculties.faculties["asmith"] = &model.Faculty{ID: "fac-asmith", Username: "asmith", Name: "A. Smith"}

	list, err := svc.ListFaculties(context.Background())
	if err != nil {
		t.Fatalf("ListFaculties returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("faculty count = %d, want 2", len(list))
	}
	if list[0].Username != "asmith" || list[1].Username != "bjones" {
		t.Errorf("faculty order = [%s %s], want [asmith bjones]", list[0].Username, list[1].Username)
	}
}

func TestDeleteFaculty(t *testing.T) {
	svc, _, faculties, _ := newRosterFixture()
	faculties.faculties["jsmith"] = &model.Faculty{ID: "fac-jsmith", Username: "jsmith", Name: "J. Smith"}

	if err := svc.DeleteFaculty(context.Background(), "fac-jsmith"); err != nil {
		t.Fatalf("DeleteFaculty returned error: %v", err)
	}
	if _, ok := faculties.faculties["jsmith"]; ok {
		t.Error("faculty still present after delete")
	}

	if err := svc.DeleteFaculty(context.Background(), "fac-jsmith"); !errors.Is(err, ErrFacultyNotFound) {
		t.Errorf("second delete error = %v, want ErrFacultyNotFound", err)
	}
}

func TestAddStudentSeedsSubjects(t *testing.T) {
	svc, students, _, _ := newRosterFixture()

	err := svc.AddStudent(context.Background(), &dto.AddStudentRequest{
		RollNumber: 102,
		Name:       "Ravi Kumar",
		Semester:   2,
		Password:   "secret",
	})
	if err != nil {
		t.Fatalf("AddStudent returned error: %v", err)
	}

	student, ok := students.students[102]
	if !ok {
		t.Fatal("student was not created")
	}
	if len(student.Subjects) != 2 {
		t.Errorf("seeded %d subjects, want 2", len(student.Subjects))
	}
}

func TestStudentsBySemester(t *testing.T) {
	svc, students, _, _ := newRosterFixture()
	enrollStudent(students, 103, 2, 201)
	enrollStudent(students, 101, 2, 201)
	enrollStudent(students, 110, 1, 101)

	list, err := svc.StudentsBySemester(context.Background(), 2)
	if err != nil {
		t.Fatalf("StudentsBySemester returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("student count = %d, want 2", len(list))
	}
	if list[0].RollNumber != 101 || list[1].RollNumber != 103 {
		t.Errorf("student order = [%d %d], want [101 103]", list[0].RollNumber, list[1].RollNumber)
	}

	if _, err := svc.StudentsBySemester(context.Background(), 9); !errors.Is(err, ErrSemesterInvalid) {
		t.Errorf("semester 9: error = %v, want ErrSemesterInvalid", err)
	}
	if _, err := svc.StudentsBySemester(context.Background(), 4); !errors.Is(err, ErrNoStudents) {
		t.Errorf("empty semester: error = %v, want ErrNoStudents", err)
	}
}

func TestStaffNames(t *testing.T) {
	svc, _, faculties, admins := newRosterFixture()
	faculties.faculties["jsmith"] = &model.Faculty{ID: "fac-jsmith", Username: "jsmith", Name: "J. Smith"}
	admins.admins["root"] = &model.Admin{ID: "adm-root", Username: "root", Name: "Site Admin"}

	name, err := svc.FacultyName(context.Background(), "jsmith")
	if err != nil || name != "J. Smith" {
		t.Errorf("FacultyName = %q, %v; want %q, nil", name, err, "J. Smith")
	}
	if _, err := svc.FacultyName(context.Background(), "ghost"); !errors.Is(err, ErrFacultyNotFound) {
		t.Errorf("unknown faculty: error = %v, want ErrFacultyNotFound", err)
	}

	name, err = svc.AdminName(context.Background(), "root")
	if err != nil || name != "Site Admin" {
		t.Errorf("AdminName = %q, %v; want %q, nil", name, err, "Site Admin")
	}
	if _, err := svc.AdminName(context.Background(), "ghost"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("unknown admin: error = %v, want ErrAdminNotFound", err)
	}
}
