package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MessageType classifies a chat message.
type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageSystem MessageType = "system"
)

// IsValid checks if the MessageType is a valid value.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageText, MessageImage, MessageSystem:
		return true
	default:
		return false
	}
}

// Thread is a chat conversation between a consumer and a supplier company,
// optionally pinned to one of the supplier's sales users.
type Thread struct {
	ID              uuid.UUID  `json:"id"`
	SupplierID      uuid.UUID  `json:"supplierId"`
	ConsumerID      uuid.UUID  `json:"consumerId"`
	AssignedSalesID *uuid.UUID `json:"assignedSalesId,omitempty"`
	Escalated       bool       `json:"escalated"`
	EscalatedAt     *time.Time `json:"escalatedAt,omitempty"`
	EscalatedBy     *uuid.UUID `json:"escalatedBy,omitempty"`
	UnreadCount     int        `json:"unreadCount"`
	LastMessage     *Message   `json:"lastMessage,omitempty"`
	Archived        bool       `json:"archived"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// SupplierKey implements Scoped.
func (t *Thread) SupplierKey() uuid.UUID { return t.SupplierID }

// ConsumerKey implements Scoped.
func (t *Thread) ConsumerKey() uuid.UUID { return t.ConsumerID }

// Escalate flags the thread for owner/admin attention. Escalating twice is an
// error so the audit fields keep their first value.
func (t *Thread) Escalate(by uuid.UUID, at time.Time) error {
	if t.Escalated {
		return errors.Wrapf(ErrInvalidTransition, "thread %s is already escalated", t.ID)
	}
	t.Escalated = true
	t.EscalatedAt = &at
	t.EscalatedBy = &by

	return nil
}

// Message is a single append-only entry of a thread.
type Message struct {
	ID         uuid.UUID   `json:"id"`
	ThreadID   uuid.UUID   `json:"threadId"`
	SenderID   uuid.UUID   `json:"senderId"`
	SenderRole Role        `json:"senderRole"`
	Type       MessageType `json:"type"`
	Content    string      `json:"content"`
	Read       bool        `json:"read"`
	CreatedAt  time.Time   `json:"createdAt"`
}
