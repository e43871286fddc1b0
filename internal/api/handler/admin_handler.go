package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/service"
	"github.com/onmedicines/asaserver/pkg/response"
)

// AdminHandler serves the admin roster endpoints.
type AdminHandler struct {
	rosterSvc service.RosterService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(rosterSvc service.RosterService) *AdminHandler {
	return &AdminHandler{rosterSvc: rosterSvc}
}

// GetDetails handles GET /getAdminDetails.
func (h *AdminHandler) GetDetails(c *gin.Context) {
	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	name, err := h.rosterSvc.AdminName(c.Request.Context(), username)
	if err != nil {
		response.BadRequest(c, "Something went wrong. Please login again.")
		return
	}

	response.OK(c, gin.H{"name": name})
}

// AddFaculty handles POST /addFaculty. Every failure kind collapses into one
// message on this endpoint; the original contract does not distinguish them.
func (h *AdminHandler) AddFaculty(c *gin.Context) {
	var req dto.AddFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Could not add Faculty")
		return
	}

	if err := h.rosterSvc.AddFaculty(c.Request.Context(), &req); err != nil {
		response.BadRequest(c, "Could not add Faculty")
		return
	}

	response.Message(c, "Faculty added successfully")
}

// AddStudent handles POST /addStudent: same creation path as registration,
// without issuing a token.
func (h *AdminHandler) AddStudent(c *gin.Context) {
	var req dto.AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "One or More Fields missing.")
		return
	}

	if err := h.rosterSvc.AddStudent(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSemesterInvalid):
			response.BadRequest(c, "Semester does not exist")
		case errors.Is(err, service.ErrStudentExists):
			response.BadRequest(c, "Student with this roll number already exists")
		default:
			response.BadRequest(c, "Something went wrong")
		}
		return
	}

	response.Message(c, "registered successfully")
}

// GetFacultyByUsername handles POST /getFacultyByUsername.
func (h *AdminHandler) GetFacultyByUsername(c *gin.Context) {
	var req dto.FacultyLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username missing")
		return
	}

	faculty, err := h.rosterSvc.FacultyByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.BadRequest(c, "No faculty with this username")
			return
		}
		response.BadRequest(c, "Something went wrong")
		return
	}

	response.OK(c, gin.H{"faculty": faculty})
}

// GetAllFaculties handles GET /getAllFaculties.
func (h *AdminHandler) GetAllFaculties(c *gin.Context) {
	faculties, err := h.rosterSvc.ListFaculties(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoFaculties) {
			response.BadRequest(c, "No faculties registered yet")
			return
		}
		response.BadRequest(c, "Something went wrong")
		return
	}

	response.OK(c, faculties)
}

// DeleteFaculty handles DELETE /deleteFaculty.
func (h *AdminHandler) DeleteFaculty(c *gin.Context) {
	var req dto.DeleteFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Id missing")
		return
	}

	if err := h.rosterSvc.DeleteFaculty(c.Request.Context(), req.ID); err != nil {
		response.BadRequest(c, "Could not delete faculty, please try again")
		return
	}

	response.Message(c, "Faculty deleted successfully")
}

// GetStudentsBySemester handles GET /getStudentsBySemester?semester=.
func (h *AdminHandler) GetStudentsBySemester(c *gin.Context) {
	raw := c.Query("semester")
	if raw == "" {
		response.BadRequest(c, "Semester not provided")
		return
	}

	semester, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, "Semester not valid")
		return
	}

	students, err := h.rosterSvc.StudentsBySemester(c.Request.Context(), semester)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSemesterInvalid):
			response.BadRequest(c, "Semester not valid")
		case errors.Is(err, service.ErrNoStudents):
			response.BadRequest(c, "No students found for given semester")
		default:
			response.BadRequest(c, "Something went wrong")
		}
		return
	}

	response.OK(c, students)
}
