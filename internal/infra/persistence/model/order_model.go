package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ConsumerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	TotalKZT    int64      `gorm:"column:total_kzt;not null"`
	Notes       string     `gorm:"type:text"`
	RespondedAt *time.Time
	RespondedBy *uuid.UUID `gorm:"type:uuid"`
	Archived    bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name, unit and
// price are copied from the product row at order creation.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Unit        string    `gorm:"type:varchar(20);not null"`
	Quantity    int       `gorm:"not null"`
	PriceKZT    int64     `gorm:"column:price_kzt;not null"`
	TotalKZT    int64     `gorm:"column:total_kzt;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
