package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/onmedicines/asaserver/config"
	"github.com/onmedicines/asaserver/internal/api/handler"
	"github.com/onmedicines/asaserver/internal/api/middleware"
	"github.com/onmedicines/asaserver/pkg/jwt"
	"github.com/onmedicines/asaserver/pkg/redis"
)

// Setup builds the Gin engine. Route paths and per-endpoint role messages
// follow the public API contract verbatim.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxBytes()))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── public ──
	r.POST("/student/register", h.Auth.RegisterStudent)
	r.POST("/student/login", h.Auth.StudentLogin)
	r.POST("/faculty/login", h.Auth.FacultyLogin)
	r.POST("/admin/login", h.Auth.AdminLogin)

	// ── authenticated ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authorized.POST("/logout", h.Auth.Logout)
		authorized.GET("/getSubjects", h.Student.GetSubjects)

		// student endpoints
		student := authorized.Group("")
		{
			student.GET("/getStudentInfo",
				middleware.RequireRole(jwt.RoleStudent, "Unauthorized"), h.Student.GetInfo)
			student.GET("/student/dashboard",
				middleware.RequireRole(jwt.RoleStudent, "Unauthorized"), h.Student.Dashboard)
			student.POST("/submitAssignment",
				middleware.RequireRole(jwt.RoleStudent, "Cannot authenticate"), h.Submission.Submit)
			student.GET("/student/getAssignment",
				middleware.RequireRole(jwt.RoleStudent, "Unauthorized"), h.Student.GetAssignment)
		}

		// faculty endpoints
		faculty := authorized.Group("")
		{
			faculty.GET("/getFacultyInfo",
				middleware.RequireRole(jwt.RoleFaculty, "Unauthorized"), h.Faculty.GetInfo)
			faculty.POST("/getStudentByRoll",
				middleware.RequireRole(jwt.RoleFaculty, "Unauthorized"), h.Faculty.GetStudentByRoll)
			faculty.GET("/faculty/getAssignment",
				middleware.RequireRole(jwt.RoleFaculty, "Request could not be authorized"), h.Faculty.GetAssignment)
			faculty.GET("/faculty/getAllSubmitted",
				middleware.RequireRole(jwt.RoleFaculty, "Request could not be authorized"), h.Faculty.GetAllSubmitted)
			faculty.GET("/faculty/getAllNotSubmitted",
				middleware.RequireRole(jwt.RoleFaculty, "Request could not be authorized"), h.Faculty.GetAllNotSubmitted)
			faculty.GET("/faculty/exportStatus",
				middleware.RequireRole(jwt.RoleFaculty, "Request could not be authorized"), h.Export.SubmissionStatus)
		}

		// admin endpoints
		admin := authorized.Group("")
		admin.Use(middleware.RequireRole(jwt.RoleAdmin, "Unauthorized"))
		{
			admin.GET("/getAdminDetails", h.Admin.GetDetails)
			admin.POST("/addFaculty", h.Admin.AddFaculty)
			admin.POST("/addStudent", h.Admin.AddStudent)
			admin.POST("/getFacultyByUsername", h.Admin.GetFacultyByUsername)
			admin.GET("/getAllFaculties", h.Admin.GetAllFaculties)
			admin.DELETE("/deleteFaculty", h.Admin.DeleteFaculty)
			admin.GET("/getStudentsBySemester", h.Admin.GetStudentsBySemester)
		}
	}

	return r
}
