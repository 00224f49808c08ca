package entity

type City struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(255);not null"`
	Image string `json:"image" gorm:"type:varchar(255)"`
}

func (City) TableName() string {
	return "cities"
}
