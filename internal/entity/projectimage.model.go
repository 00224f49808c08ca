package entity

type ProjectImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	IDProject uint   `json:"id_project" gorm:"column:id_project;not null;index"`
	Image     string `json:"image" gorm:"type:varchar(255);not null"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}
