package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidTransition is the base error for every illegal status transition
// on links, orders, complaints and incidents.
var ErrInvalidTransition = errors.New("invalid status transition")

// LinkStatus is the lifecycle state of a partnership link.
type LinkStatus string

const (
	LinkPending  LinkStatus = "pending"
	LinkApproved LinkStatus = "approved"
	LinkDeclined LinkStatus = "declined"
	LinkBlocked  LinkStatus = "blocked"
)

// Link is a partnership between a consumer and a supplier company. An
// approved link grants the consumer visibility into the supplier's catalog.
type Link struct {
	ID          uuid.UUID  `json:"id"`
	SupplierID  uuid.UUID  `json:"supplierId"`
	ConsumerID  uuid.UUID  `json:"consumerId"`
	Status      LinkStatus `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	RespondedBy *uuid.UUID `json:"respondedBy,omitempty"`
	Archived    bool       `json:"archived"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SupplierKey implements Scoped.
func (l *Link) SupplierKey() uuid.UUID { return l.SupplierID }

// ConsumerKey implements Scoped.
func (l *Link) ConsumerKey() uuid.UUID { return l.ConsumerID }

// Approve moves a pending link to approved, recording who responded and when.
func (l *Link) Approve(by uuid.UUID, at time.Time) error {
	if l.Status != LinkPending {
		return errors.Wrapf(ErrInvalidTransition, "link %s is %s, not pending", l.ID, l.Status)
	}
	l.Status = LinkApproved
	l.RespondedAt = &at
	l.RespondedBy = &by

	return nil
}

// Decline moves a pending link to declined, recording who responded and when.
func (l *Link) Decline(by uuid.UUID, at time.Time) error {
	if l.Status != LinkPending {
		return errors.Wrapf(ErrInvalidTransition, "link %s is %s, not pending", l.ID, l.Status)
	}
	l.Status = LinkDeclined
	l.RespondedAt = &at
	l.RespondedBy = &by

	return nil
}

// Block suspends an approved partnership. Only approved links can be blocked.
func (l *Link) Block() error {
	if l.Status != LinkApproved {
		return errors.Wrapf(ErrInvalidTransition, "link %s is %s, not approved", l.ID, l.Status)
	}
	l.Status = LinkBlocked

	return nil
}

// Unblock restores a blocked partnership to approved.
func (l *Link) Unblock() error {
	if l.Status != LinkBlocked {
		return errors.Wrapf(ErrInvalidTransition, "link %s is %s, not blocked", l.ID, l.Status)
	}
	l.Status = LinkApproved

	return nil
}
