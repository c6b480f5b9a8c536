package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ComplaintStatus is the lifecycle state of a complaint. Escalation is part
// of the status enum; there is no separate escalated flag.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintEscalated  ComplaintStatus = "escalated"
	ComplaintClosed     ComplaintStatus = "closed"
)

// Complaint is filed by a consumer against one of their own orders and worked
// by the supplier's staff.
type Complaint struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"orderId"`
	SupplierID  uuid.UUID       `json:"supplierId"`
	ConsumerID  uuid.UUID       `json:"consumerId"` // the reporting consumer
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	AssignedTo  *uuid.UUID      `json:"assignedTo,omitempty"`
	Resolution  string          `json:"resolution,omitempty"`
	ClosedAt    *time.Time      `json:"closedAt,omitempty"`
	Archived    bool            `json:"archived"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SupplierKey implements Scoped.
func (c *Complaint) SupplierKey() uuid.UUID { return c.SupplierID }

// ConsumerKey implements Scoped.
func (c *Complaint) ConsumerKey() uuid.UUID { return c.ConsumerID }

// Start moves an open complaint into progress, optionally assigning a staff
// user.
func (c *Complaint) Start(assignee *uuid.UUID) error {
	if c.Status != ComplaintOpen {
		return errors.Wrapf(ErrInvalidTransition, "complaint %s is %s, not open", c.ID, c.Status)
	}
	c.Status = ComplaintInProgress
	if assignee != nil {
		c.AssignedTo = assignee
	}

	return nil
}

// Escalate raises the complaint to owner/admin attention. Allowed from open
// and in_progress; the caller's role must carry canEscalate.
func (c *Complaint) Escalate(role Role) error {
	if !PermissionsFor(role).CanEscalate {
		return errors.Errorf("role %s cannot escalate complaints", role)
	}
	if c.Status != ComplaintOpen && c.Status != ComplaintInProgress {
		return errors.Wrapf(ErrInvalidTransition, "complaint %s is %s, cannot escalate", c.ID, c.Status)
	}
	c.Status = ComplaintEscalated

	return nil
}

// Resolve records a resolution. An escalated complaint may only be resolved
// by owner/admin.
func (c *Complaint) Resolve(role Role, resolution string) error {
	switch c.Status {
	case ComplaintOpen, ComplaintInProgress:
	case ComplaintEscalated:
		if !CanResolveEscalatedComplaints(role) {
			return errors.Errorf("role %s cannot resolve an escalated complaint", role)
		}
	default:
		return errors.Wrapf(ErrInvalidTransition, "complaint %s is %s, cannot resolve", c.ID, c.Status)
	}
	c.Status = ComplaintResolved
	c.Resolution = resolution

	return nil
}

// Close finishes a resolved complaint.
func (c *Complaint) Close(at time.Time) error {
	if c.Status != ComplaintResolved {
		return errors.Wrapf(ErrInvalidTransition, "complaint %s is %s, not resolved", c.ID, c.Status)
	}
	c.Status = ComplaintClosed
	c.ClosedAt = &at

	return nil
}
