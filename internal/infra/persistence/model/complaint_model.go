package model

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintModel mirrors the 'complaints' table.
type ComplaintModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupplierID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ConsumerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subject     string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	Resolution  string     `gorm:"type:text"`
	ClosedAt    *time.Time
	Archived    bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}

// IncidentModel mirrors the 'incidents' table.
type IncidentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Priority    string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null"`
	ResolvedAt  *time.Time
	Archived    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IncidentModel) TableName() string {
	return "incidents"
}
