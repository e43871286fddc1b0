package dto

// FileUpload carries a submitted file verbatim: name, raw bytes, declared
// MIME type and byte size, exactly as received.
type FileUpload struct {
	Name     string
	Data     []byte
	Mimetype string
	Size     int64
}

// SubmittedAssignment is one row of the faculty "who has submitted" listing.
type SubmittedAssignment struct {
	RollNumber int `json:"rollNumber"`
	Code       int `json:"code"`
}

// NotSubmittedStudent is one row of the faculty "who has not submitted"
// listing.
type NotSubmittedStudent struct {
	RollNumber int    `json:"rollNumber"`
	Name       string `json:"name"`
}
