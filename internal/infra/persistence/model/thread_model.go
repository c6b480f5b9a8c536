package model

import (
	"time"

	"github.com/google/uuid"
)

// ThreadModel mirrors the 'chat_threads' table. One thread exists per
// supplier/consumer pair.
type ThreadModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_threads_supplier_consumer"`
	ConsumerID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_threads_supplier_consumer"`
	AssignedSalesID *uuid.UUID `gorm:"type:uuid"`
	Escalated       bool       `gorm:"not null;default:false"`
	EscalatedAt     *time.Time
	EscalatedBy     *uuid.UUID `gorm:"type:uuid"`
	Archived        bool       `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Messages []MessageModel `gorm:"foreignKey:ThreadID"`
}

// TableName explicitly sets the table name for GORM.
func (ThreadModel) TableName() string {
	return "chat_threads"
}

// MessageModel mirrors the 'chat_messages' table. Rows are append-only.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ThreadID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null"`
	SenderRole string    `gorm:"type:varchar(20);not null"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Content    string    `gorm:"type:text;not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "chat_messages"
}
