package entity

type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(255);not null"`
	Image string `json:"image" gorm:"type:varchar(255)"`
}

func (Category) TableName() string {
	return "categories"
}
