package dto

// SubjectProgressResponse is one enrolled subject with its submission flag.
type SubjectProgressResponse struct {
	Name        string `json:"name"`
	Code        int    `json:"code"`
	IsSubmitted bool   `json:"isSubmitted"`
}

// StudentResponse is a student profile without the password.
type StudentResponse struct {
	RollNumber int                       `json:"rollNumber"`
	Name       string                    `json:"name"`
	Semester   int                       `json:"semester"`
	Subjects   []SubjectProgressResponse `json:"subjects"`
}

// StudentSummary is the roster listing row (admin view).
type StudentSummary struct {
	RollNumber int    `json:"rollNumber"`
	Name       string `json:"name"`
}
