package model

// Student is a student profile plus per-subject submission progress.
// Subjects are seeded once at registration from the semester catalog; after
// that only the IsSubmitted flags ever change.
type Student struct {
	RollNumber int    `gorm:"primaryKey"                 json:"rollNumber"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Semester   int    `gorm:"not null"                   json:"semester"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	BaseModel

	Subjects []SubjectProgress `gorm:"foreignKey:RollNumber;references:RollNumber" json:"subjects"`
}

// TableName maps Student to the students table.
func (Student) TableName() string { return "students" }

// SubjectProgress is one enrolled subject of one student, with its
// submission flag. Unique on (roll_number, code).
type SubjectProgress struct {
	ID          int64  `gorm:"primaryKey"                              json:"-"`
	RollNumber  int    `gorm:"not null;uniqueIndex:idx_student_subjects_roll_code" json:"-"`
	Name        string `gorm:"type:varchar(100);not null"              json:"name"`
	Code        int    `gorm:"not null;uniqueIndex:idx_student_subjects_roll_code" json:"code"`
	IsSubmitted bool   `gorm:"not null;default:false"                  json:"isSubmitted"`
	Position    int    `gorm:"not null;default:0"                      json:"-"`
}

// TableName maps SubjectProgress to the student_subjects table.
func (SubjectProgress) TableName() string { return "student_subjects" }
