package entity

import "github.com/shopspring/decimal"

// Order links a user to a project. Dates are stored as ISO "YYYY-MM-DD"
// strings, so lexicographic comparison matches chronological order.
type Order struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	IDUser      uint             `json:"id_user" gorm:"column:id_user;not null;index"`
	IDProject   uint             `json:"id_project" gorm:"column:id_project;not null;index"`
	Status      OrderStatus      `json:"status" gorm:"type:varchar(100);not null"`
	CreatedDate string           `json:"created_date" gorm:"column:created_date;type:varchar(10);not null"`
	UpdatedDate *string          `json:"updated_date" gorm:"column:updated_date;type:varchar(10)"`
	StartPrice  *decimal.Decimal `json:"start_price" gorm:"column:start_price;type:decimal(10,2)"`
	FinalPrice  *decimal.Decimal `json:"final_price" gorm:"column:final_price;type:decimal(10,2)"`
	PaymentDate *string          `json:"payment_date" gorm:"column:payment_date;type:varchar(10)"`
	StartDate   *string          `json:"start_date" gorm:"column:start_date;type:varchar(10)"`
	EndDate     *string          `json:"end_date" gorm:"column:end_date;type:varchar(10)"`

	User    *User    `json:"-" gorm:"foreignKey:IDUser"`
	Project *Project `json:"-" gorm:"foreignKey:IDProject"`
}

func (Order) TableName() string {
	return "orders"
}
