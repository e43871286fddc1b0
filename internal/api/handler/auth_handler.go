package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/api/middleware"
	"github.com/onmedicines/asaserver/internal/dto"
	"github.com/onmedicines/asaserver/internal/service"
	"github.com/onmedicines/asaserver/pkg/response"
)

// AuthHandler covers registration, login and logout.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// RegisterStudent handles POST /student/register.
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "One or More Fields missing.")
		return
	}

	token, err := h.authSvc.RegisterStudent(c.Request.Context(), &req)
	if err != nil {
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

	response.MessageWithToken(c, "registered successfully", token)
}

// StudentLogin handles POST /student/login.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "One or More Fields missing.")
		return
	}

	token, err := h.authSvc.StudentLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.BadRequest(c, "student not found.")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.BadRequest(c, "Invalid credentials")
		default:
			response.BadRequest(c, "Something went wrong")
		}
		return
	}

	response.MessageWithToken(c, "logged in successfully", token)
}

// FacultyLogin handles POST /faculty/login.
func (h *AuthHandler) FacultyLogin(c *gin.Context) {
	var req dto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "One or More Fields missing.")
		return
	}

	token, err := h.authSvc.FacultyLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFacultyNotFound):
			response.BadRequest(c, "Faculty does not exist")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.BadRequest(c, "Invalid credentials")
		default:
			response.BadRequest(c, "Something went wrong")
		}
		return
	}

	response.MessageWithToken(c, "Faculty logged in successfully", token)
}

// AdminLogin handles POST /admin/login.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "One or More Fields missing.")
		return
	}

	token, err := h.authSvc.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			response.BadRequest(c, "Admin does not exist")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.BadRequest(c, "Invalid credentials")
		default:
			response.BadRequest(c, "Something went wrong")
		}
		return
	}

	response.MessageWithToken(c, "Admin logged in successfully", token)
}

// Logout handles POST /logout for any authenticated principal.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.CtxTokenID)

	var expiresAt time.Time
	if v, ok := c.Get(middleware.CtxTokenExp); ok {
		if t, ok := v.(time.Time); ok {
			expiresAt = t
		}
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.BadRequest(c, "Could not log out, please try again")
		return
	}

	response.Message(c, "logged out successfully")
}
