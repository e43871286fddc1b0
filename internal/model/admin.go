package model

// Admin is an administrator account managing the faculty and student rosters.
type Admin struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Username string `gorm:"type:varchar(100);not null;unique"              json:"username"`
	Name     string `gorm:"type:varchar(100);not null"                     json:"name"`
	Password string `gorm:"type:varchar(255);not null"                     json:"-"`
	BaseModel
}

// TableName maps Admin to the admins table.
func (Admin) TableName() string { return "admins" }
