package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Prices are stored as integer
// tenge amounts.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Unit        string    `gorm:"type:varchar(20);not null"`
	PriceKZT    int64     `gorm:"column:price_kzt;not null"`
	Stock       int       `gorm:"not null;default:0"`
	MOQ         int       `gorm:"column:moq;not null;default:1"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	Archived    bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
