package service

import (
	"context"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/internal/repository"
)

func TestSubmissionStatusWorkbook(t *testing.T) {
	students := newMockStudentRepo()
	assignments := newMockAssignmentRepo()
	repo := &repository.Repository{
		Student:    students,
		Assignment: assignments,
	}
	logger := zap.NewNop()
	exportSvc := NewExportService(repo, logger)
	submission := NewSubmissionService(repo, logger)

	enrollStudent(students, 101, 2, 201)
	enrollStudent(students, 102, 2, 201)
	if err := submission.Submit(context.Background(), 101, 201, pdfUpload([]byte("x"))); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	buf, filename, err := exportSvc.SubmissionStatus(context.Background(), 201)
	if err != nil {
		t.Fatalf("SubmissionStatus returned error: %v", err)
	}
	if filename != "submission-status-201.xlsx" {
		t.Errorf("filename = %q, want submission-status-201.xlsx", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("opening workbook failed: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Submitted", "A2")
	if err != nil {
		t.Fatalf("reading Submitted!A2 failed: %v", err)
	}
	if got != "101" {
		t.Errorf("Submitted!A2 = %q, want 101", got)
	}

	got, err = f.GetCellValue("Not Submitted", "A2")
	if err != nil {
		t.Fatalf("reading Not Submitted!A2 failed: %v", err)
	}
	if got != "102" {
		t.Errorf("Not Submitted!A2 = %q, want 102", got)
	}
}
