package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/service"
	"github.com/onmedicines/asaserver/pkg/response"
)

// FacultyHandler serves the faculty-facing endpoints.
type FacultyHandler struct {
	retrievalSvc service.RetrievalService
	studentSvc   service.StudentService
	rosterSvc    service.RosterService
}

// NewFacultyHandler creates the FacultyHandler.
func NewFacultyHandler(retrievalSvc service.RetrievalService, studentSvc service.StudentService, rosterSvc service.RosterService) *FacultyHandler {
	return &FacultyHandler{
		retrievalSvc: retrievalSvc,
		studentSvc:   studentSvc,
		rosterSvc:    rosterSvc,
	}
}

// GetInfo handles GET /getFacultyInfo.
func (h *FacultyHandler) GetInfo(c *gin.Context) {
	username, ok := MustGetUsername(c)
	if !ok {
		return
	}

	name, err := h.rosterSvc.FacultyName(c.Request.Context(), username)
	if err != nil {
		response.BadRequest(c, "Something went wrong. Please login again.")
		return
	}

	response.OK(c, gin.H{"name": name})
}

// GetAssignment handles GET /faculty/getAssignment?rollNumber=&code=.
// Any faculty principal may fetch any student's submission; the framing is
// the same always-PDF contract as the student path.
func (h *FacultyHandler) GetAssignment(c *gin.Context) {
	code, codeErr := strconv.Atoi(c.Query("code"))
	rollNumber, rollErr := strconv.Atoi(c.Query("rollNumber"))
	if codeErr != nil || rollErr != nil || code <= 0 || rollNumber <= 0 {
		response.BadRequest(c, "Code or Roll number not provided")
		return
	}

	assignment, err := h.retrievalSvc.FetchForFaculty(c.Request.Context(), rollNumber, code)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			response.BadRequest(c, "Assignment not submitted")
			return
		}
		response.BadRequest(c, "Something went wrong")
		return
	}

	response.PDF(c, code, assignment.FileData)
}

// GetAllSubmitted handles GET /faculty/getAllSubmitted?code=.
func (h *FacultyHandler) GetAllSubmitted(c *gin.Context) {
	code, err := strconv.Atoi(c.Query("code"))
	if err != nil || code <= 0 {
		response.BadRequest(c, "Code or Roll number not provided")
		return
	}

	assignments, err := h.retrievalSvc.ListSubmitted(c.Request.Context(), code)
	if err != nil {
		response.BadRequest(c, "No assignments submitted for this subject")
		return
	}

	response.OK(c, gin.H{"assignments": assignments})
}

// GetAllNotSubmitted handles GET /faculty/getAllNotSubmitted?code=.
// An empty result is a domain signal, reported with the dedicated message.
func (h *FacultyHandler) GetAllNotSubmitted(c *gin.Context) {
	code, err := strconv.Atoi(c.Query("code"))
	if err != nil || code <= 0 {
		response.BadRequest(c, "Code or Roll number not provided")
		return
	}

	students, err := h.retrievalSvc.ListNotSubmitted(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrAllSubmitted) {
			response.BadRequest(c, "All registered students have submitted the assignment")
			return
		}
		response.BadRequest(c, "Some error occured on our part")
		return
	}

	response.OK(c, gin.H{"studentsWhoHaveNotSubmitted": students})
}

// GetStudentByRoll handles POST /getStudentByRoll.
func (h *FacultyHandler) GetStudentByRoll(c *gin.Context) {
	var req dto.StudentLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Roll number not found")
		return
	}

	student, err := h.studentSvc.GetByRoll(c.Request.Context(), req.RollNumber)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.BadRequest(c, "Student not found")
			return
		}
		response.BadRequest(c, "Something went wrong")
		return
	}

	response.OK(c, student)
}
