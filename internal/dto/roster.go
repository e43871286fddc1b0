package dto

// ── admin roster requests ──

// AddFacultyRequest creates a faculty account.
type AddFacultyRequest struct {
	Name     string `json:"name"     binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddStudentRequest creates a student account (admin path; same fields as
// self-registration).
type AddStudentRequest struct {
	RollNumber int    `json:"rollNumber" binding:"required"`
	Name       string `json:"name"       binding:"required"`
	Semester   int    `json:"semester"   binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// FacultyLookupRequest fetches one faculty account by username.
type FacultyLookupRequest struct {
	Username string `json:"username" binding:"required"`
}

// DeleteFacultyRequest removes one faculty account by id.
type DeleteFacultyRequest struct {
	ID string `json:"_id" binding:"required"`
}

// StudentLookupRequest fetches one student by roll number (faculty view).
type StudentLookupRequest struct {
	RollNumber int `json:"rollNumber" binding:"required"`
}

// FacultyResponse is a faculty account without the password.
type FacultyResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
