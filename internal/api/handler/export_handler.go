package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/service"
	"github.com/onmedicines/asaserver/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves downloadable faculty reports.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// SubmissionStatus handles GET /faculty/exportStatus?code=.
func (h *ExportHandler) SubmissionStatus(c *gin.Context) {
	code, err := strconv.Atoi(c.Query("code"))
	if err != nil || code <= 0 {
		response.BadRequest(c, "Code or Roll number not provided")
		return
	}

	buf, filename, err := h.exportSvc.SubmissionStatus(c.Request.Context(), code)
	if err != nil {
		response.BadRequest(c, "Something went wrong")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
