package entity

// ProjectAttribute is one attribute-value pair on a project. The composite
// primary key keeps at most one row per (project, attribute) pair.
type ProjectAttribute struct {
	IDProject   uint   `json:"id_project" gorm:"column:id_project;primaryKey;autoIncrement:false"`
	IDAttribute uint   `json:"id_attribute" gorm:"column:id_attribute;primaryKey;autoIncrement:false"`
	Value       string `json:"value" gorm:"type:varchar(255);not null"`
	IDUnit      *uint  `json:"id_unit" gorm:"column:id_unit"`

	Attribute *Attribute `json:"-" gorm:"foreignKey:IDAttribute"`
	Unit      *Unit      `json:"-" gorm:"foreignKey:IDUnit"`
}

func (ProjectAttribute) TableName() string {
	return "project_attributes"
}
