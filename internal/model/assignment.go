package model

import "time"

// Assignment is one submitted file for one (student, subject code) pair.
// The file bytes live in the row itself. Rows are never updated or deleted;
// a resubmission is rejected, not replaced. The unique index on
// (roll_number, code) is what enforces at-most-one-submission — there is no
// pre-insert existence check anywhere.
type Assignment struct {
	ID           int64     `gorm:"primaryKey"                 json:"-"`
	RollNumber   int       `gorm:"not null;uniqueIndex:idx_assignments_roll_code" json:"rollNumber"`
	Code         int       `gorm:"not null;uniqueIndex:idx_assignments_roll_code" json:"code"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"-"`
	FileData     []byte    `gorm:"type:bytea;not null"        json:"-"`
	FileMimetype string    `gorm:"type:varchar(100);not null" json:"-"`
	FileSize     int64     `gorm:"not null;default:0"         json:"-"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName maps Assignment to the assignments table.
func (Assignment) TableName() string { return "assignments" }
