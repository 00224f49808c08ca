package entity

type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(255);uniqueIndex"`
	MainImage   string `json:"main_image" gorm:"column:main_image;type:varchar(255)"`
	Description string `json:"description" gorm:"type:text"`
	IsDone      bool   `json:"is_done" gorm:"column:is_done;default:false"`
	IDCategory  uint   `json:"id_category" gorm:"column:id_category;not null"`
	IDCity      uint   `json:"id_city" gorm:"column:id_city;not null"`

	Category *Category `json:"-" gorm:"foreignKey:IDCategory"`
	City     *City     `json:"-" gorm:"foreignKey:IDCity"`
}

func (Project) TableName() string {
	return "projects"
}
