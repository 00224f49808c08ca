package entity

// Unit is a measurement unit referenced by project attribute values,
// e.g. "m2" with full name "square meter".
type Unit struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"type:varchar(255);not null"`
	FullName *string `json:"full_name" gorm:"column:full_name;type:varchar(255)"`
}

func (Unit) TableName() string {
	return "units"
}
