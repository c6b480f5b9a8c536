package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkModel mirrors the 'partnership_links' table. A link connects one
// supplier company with one consumer user; the pair is unique.
type LinkModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_links_supplier_consumer"`
	ConsumerID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_links_supplier_consumer"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	RequestedAt time.Time  `gorm:"not null"`
	RespondedAt *time.Time
	RespondedBy *uuid.UUID `gorm:"type:uuid"`
	Archived    bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
	Consumer *UserModel     `gorm:"foreignKey:ConsumerID"`
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "partnership_links"
}
