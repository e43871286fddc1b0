package model

// SemesterSubject is one catalog entry: a subject offered in a semester.
// Catalog rows are reference data seeded by migration and immutable at
// runtime.
type SemesterSubject struct {
	ID       int    `gorm:"primaryKey"                 json:"-"`
	Semester int    `gorm:"not null"                   json:"semester"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Code     int    `gorm:"not null"                   json:"code"`
	Position int    `gorm:"not null;default:0"         json:"-"`
}

// TableName maps SemesterSubject to the semester_subjects table.
func (SemesterSubject) TableName() string { return "semester_subjects" }
