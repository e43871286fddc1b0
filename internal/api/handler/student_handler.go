package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/service"
	"github.com/onmedicines/asaserver/pkg/response"
)

// StudentHandler serves the student-facing read endpoints.
type StudentHandler struct {
	studentSvc   service.StudentService
	retrievalSvc service.RetrievalService
	catalogSvc   service.CatalogService
}

// NewStudentHandler creates the StudentHandler.
func NewStudentHandler(studentSvc service.StudentService, retrievalSvc service.RetrievalService, catalogSvc service.CatalogService) *StudentHandler {
	return &StudentHandler{
		studentSvc:   studentSvc,
		retrievalSvc: retrievalSvc,
		catalogSvc:   catalogSvc,
	}
}

// GetInfo handles GET /getStudentInfo.
func (h *StudentHandler) GetInfo(c *gin.Context) {
	rollNumber, ok := MustGetRollNumber(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByRoll(c.Request.Context(), rollNumber)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.BadRequest(c, "student not found.")
			return
		}
		response.BadRequest(c, "Something went wrong")
		return
	}

	response.OK(c, gin.H{"message": "data fetched successfully", "student": student})
}

// Dashboard handles GET /student/dashboard.
func (h *StudentHandler) Dashboard(c *gin.Context) {
	rollNumber, ok := MustGetRollNumber(c)
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByRoll(c.Request.Context(), rollNumber)
	if err != nil {
		response.BadRequest(c, "Cannot access student details")
		return
	}

	response.OK(c, gin.H{"message": "Fetched data successfully", "student": student})
}

// GetAssignment handles GET /student/getAssignment?code=.
// Streams the stored bytes as an inline PDF named "<code>.pdf" regardless of
// the stored metadata; a missing submission is an explicit 400, never a
// crash.
func (h *StudentHandler) GetAssignment(c *gin.Context) {
	rollNumber, ok := MustGetRollNumber(c)
	if !ok {
		return
	}

	code, err := strconv.Atoi(c.Query("code"))
	if err != nil || code <= 0 {
		response.BadRequest(c, "File or code missing")
		return
	}

	assignment, err := h.retrievalSvc.FetchForStudent(c.Request.Context(), rollNumber, code)
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

// GetSubjects handles GET /getSubjects: every subject code across all
// semesters, flattened.
func (h *StudentHandler) GetSubjects(c *gin.Context) {
	codes, err := h.catalogSvc.SubjectCodes(c.Request.Context())
	if err != nil {
		response.BadRequest(c, "Sorry something went wrong please login and try again later!")
		return
	}

	response.OK(c, gin.H{"subjectCodes": codes})
}
