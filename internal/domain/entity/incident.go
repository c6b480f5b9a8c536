package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// IncidentStatus is the lifecycle state of an operational incident.
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "open"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
)

// IncidentPriority ranks an incident.
type IncidentPriority string

const (
	PriorityLow      IncidentPriority = "low"
	PriorityMedium   IncidentPriority = "medium"
	PriorityHigh     IncidentPriority = "high"
	PriorityCritical IncidentPriority = "critical"
)

// IsValid checks if the IncidentPriority is a valid value.
func (p IncidentPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// Incident is an internal operational issue tracked by a supplier company.
// Only roles with canManageIncidents touch these.
type Incident struct {
	ID          uuid.UUID        `json:"id"`
	SupplierID  uuid.UUID        `json:"supplierId"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    IncidentPriority `json:"priority"`
	Status      IncidentStatus   `json:"status"`
	OwnerID     uuid.UUID        `json:"ownerId"`
	ResolvedAt  *time.Time       `json:"resolvedAt,omitempty"`
	Archived    bool             `json:"archived"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Start moves an open incident into progress.
func (i *Incident) Start() error {
	if i.Status != IncidentOpen {
		return errors.Wrapf(ErrInvalidTransition, "incident %s is %s, not open", i.ID, i.Status)
	}
	i.Status = IncidentInProgress

	return nil
}

// Resolve finishes an incident from open or in_progress.
func (i *Incident) Resolve(at time.Time) error {
	if i.Status == IncidentResolved {
		return errors.Wrapf(ErrInvalidTransition, "incident %s is already resolved", i.ID)
	}
	i.Status = IncidentResolved
	i.ResolvedAt = &at

	return nil
}
