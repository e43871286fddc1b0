package handler

import "github.com/onmedicines/asaserver/internal/service"

// Handler aggregates the HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Submission *SubmissionHandler
	Faculty    *FacultyHandler
	Admin      *AdminHandler
	Export     *ExportHandler
}

// NewHandler wires handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Student:    NewStudentHandler(svc.Student, svc.Retrieval, svc.Catalog),
		Submission: NewSubmissionHandler(svc.Submission),
		Faculty:    NewFacultyHandler(svc.Retrieval, svc.Student, svc.Roster),
		Admin:      NewAdminHandler(svc.Roster),
		Export:     NewExportHandler(svc.Export),
	}
}
