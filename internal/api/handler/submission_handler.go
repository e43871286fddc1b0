package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/service"
	"github.com/onmedicines/asaserver/pkg/response"
)

// SubmissionHandler accepts assignment uploads.
type SubmissionHandler struct {
	submissionSvc service.SubmissionService
}

// NewSubmissionHandler creates the SubmissionHandler.
func NewSubmissionHandler(submissionSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// Submit handles POST /submitAssignment.
// Multipart form: "file" (the document) and "code" (subject code, coerced to
// an integer). The roll number comes from the verified token only.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	rollNumber, ok := MustGetRollNumber(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File or code missing")
		return
	}

	code, err := strconv.Atoi(c.PostForm("code"))
	if err != nil || code <= 0 {
		response.BadRequest(c, "File or code missing")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "File or code missing")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "File or code missing")
		return
	}

	upload := &dto.FileUpload{
		Name:     fileHeader.Filename,
		Data:     data,
		Mimetype: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
	}

	if err := h.submissionSvc.Submit(c.Request.Context(), rollNumber, code, upload); err != nil {
		switch {
		case errors.Is(err, service.ErrSubmissionInvalid):
			response.BadRequest(c, "File or code missing")
		case errors.Is(err, service.ErrDuplicateSubmission):
			response.BadRequest(c, "Assignment already exists")
		default:
			response.BadRequest(c, "Something went wrong")
		}
		return
	}

	response.Message(c, "assignment submitted successfully")
}
