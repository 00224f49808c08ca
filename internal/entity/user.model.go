package entity

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(255)"`
	OrgName  string `json:"org_name" gorm:"column:org_name;type:varchar(255)"`
	Role     Role   `json:"role" gorm:"type:varchar(100);default:USER"`
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone    string `json:"phone" gorm:"type:varchar(100)"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
}

func (User) TableName() string {
	return "users"
}
