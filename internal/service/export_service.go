package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/internal/repository"
)

// ExportService produces downloadable reports for faculty.
type ExportService interface {
	// SubmissionStatus builds an xlsx workbook for one subject code: a
	// sheet of students who have submitted and a sheet of students who
	// have not. An empty pending sheet is fine here; this is a report,
	// not the listing endpoint.
	SubmissionStatus(ctx context.Context, code int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) SubmissionStatus(ctx context.Context, code int) (*bytes.Buffer, string, error) {
	submitted, err := s.repo.Assignment.ListByCode(ctx, code)
	if err != nil {
		s.logger.Error("listing submissions failed", zap.Int("code", code), zap.Error(err))
		return nil, "", err
	}

	pending, err := s.repo.Student.ListNotSubmitted(ctx, code)
	if err != nil {
		s.logger.Error("listing pending students failed", zap.Int("code", code), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// ── Submitted sheet ──
	const submittedSheet = "Submitted"
	f.SetSheetName("Sheet1", submittedSheet)
	f.SetCellValue(submittedSheet, "A1", "Roll Number")
	f.SetCellValue(submittedSheet, "B1", "Subject Code")
	f.SetCellStyle(submittedSheet, "A1", "B1", headerStyle)
	for i, a := range submitted {
		row := i + 2
		f.SetCellValue(submittedSheet, fmt.Sprintf("A%d", row), a.RollNumber)
		f.SetCellValue(submittedSheet, fmt.Sprintf("B%d", row), a.Code)
	}

	// ── Not Submitted sheet ──
	const pendingSheet = "Not Submitted"
	if _, err := f.NewSheet(pendingSheet); err != nil {
		return nil, "", fmt.Errorf("creating sheet: %w", err)
	}
	f.SetCellValue(pendingSheet, "A1", "Roll Number")
	f.SetCellValue(pendingSheet, "B1", "Name")
	f.SetCellStyle(pendingSheet, "A1", "B1", headerStyle)
	for i, st := range pending {
		row := i + 2
		f.SetCellValue(pendingSheet, fmt.Sprintf("A%d", row), st.RollNumber)
		f.SetCellValue(pendingSheet, fmt.Sprintf("B%d", row), st.Name)
	}

	f.SetColWidth(submittedSheet, "A", "B", 16)
	f.SetColWidth(pendingSheet, "A", "B", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing workbook failed", zap.Int("code", code), zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("submission-status-%d.xlsx", code)
	return buf, filename, nil
}
