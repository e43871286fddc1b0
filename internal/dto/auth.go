package dto

// ── auth requests ──

// RegisterStudentRequest is the student self-registration body.
type RegisterStudentRequest struct {
	RollNumber int    `json:"rollNumber" binding:"required"`
	Name       string `json:"name"       binding:"required"`
	Semester   int    `json:"semester"   binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// StudentLoginRequest is the student login body.
type StudentLoginRequest struct {
	RollNumber int    `json:"rollNumber" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// StaffLoginRequest is the faculty/admin login body.
type StaffLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
