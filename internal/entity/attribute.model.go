package entity

type Attribute struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

func (Attribute) TableName() string {
	return "attributes"
}
