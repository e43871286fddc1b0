package model

// Faculty is a faculty account. Any faculty principal may retrieve any
// student's submission; there is no per-subject ownership.
type Faculty struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Username string `gorm:"type:varchar(100);not null;unique"              json:"username"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Password string `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel
}

// TableName maps Faculty to the faculties table.
func (Faculty) TableName() string { return "faculties" }
