package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openComplaint() *Complaint {
	return &Complaint{
		ID:         uuid.New(),
		OrderID:    uuid.New(),
		SupplierID: uuid.New(),
		ConsumerID: uuid.New(),
		Subject:    "Повреждённая упаковка",
		Status:     ComplaintOpen,
	}
}

func TestComplaint_HappyPath(t *testing.T) {
	c := openComplaint()
	assignee := uuid.New()

	require.NoError(t, c.Start(&assignee))
	assert.Equal(t, ComplaintInProgress, c.Status)
	require.NotNil(t, c.AssignedTo)
	assert.Equal(t, assignee, *c.AssignedTo)

	require.NoError(t, c.Resolve(RoleSales, "replacement shipped"))
	assert.Equal(t, ComplaintResolved, c.Status)
	assert.Equal(t, "replacement shipped", c.Resolution)

	closedAt := time.Now()
	require.NoError(t, c.Close(closedAt))
	assert.Equal(t, ComplaintClosed, c.Status)
	require.NotNil(t, c.ClosedAt)
	assert.Equal(t, closedAt, *c.ClosedAt)
}

func TestComplaint_EscalationPath(t *testing.T) {
	c := openComplaint()

	require.NoError(t, c.Escalate(RoleSales))
	assert.Equal(t, ComplaintEscalated, c.Status)

	// Sales escalated it, but only owner/admin may resolve it now.
	err := c.Resolve(RoleSales, "tried anyway")
	require.Error(t, err)
	assert.Equal(t, ComplaintEscalated, c.Status)

	require.NoError(t, c.Resolve(RoleAdmin, "refund issued"))
	assert.Equal(t, ComplaintResolved, c.Status)
}

func TestComplaint_ConsumerCannotEscalate(t *testing.T) {
	c := openComplaint()

	require.Error(t, c.Escalate(RoleConsumer))
	assert.Equal(t, ComplaintOpen, c.Status)
}

func TestComplaint_IllegalTransitions(t *testing.T) {
	c := openComplaint()
	c.Status = ComplaintClosed

	assert.Error(t, c.Start(nil))
	assert.Error(t, c.Escalate(RoleOwner))
	assert.Error(t, c.Resolve(RoleOwner, "too late"))

	c.Status = ComplaintOpen
	err := c.Close(time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestIncident_Lifecycle(t *testing.T) {
	inc := &Incident{ID: uuid.New(), Status: IncidentOpen, Priority: PriorityHigh}

	require.NoError(t, inc.Start())
	assert.Equal(t, IncidentInProgress, inc.Status)

	at := time.Now()
	require.NoError(t, inc.Resolve(at))
	assert.Equal(t, IncidentResolved, inc.Status)
	require.NotNil(t, inc.ResolvedAt)

	require.Error(t, inc.Start())
	require.Error(t, inc.Resolve(time.Now()))
}

func TestThread_Escalate(t *testing.T) {
	thread := &Thread{ID: uuid.New(), SupplierID: uuid.New(), ConsumerID: uuid.New()}
	by := uuid.New()
	at := time.Now()

	require.NoError(t, thread.Escalate(by, at))
	assert.True(t, thread.Escalated)
	require.NotNil(t, thread.EscalatedAt)
	assert.Equal(t, by, *thread.EscalatedBy)

	err := thread.Escalate(uuid.New(), time.Now())
	require.Error(t, err)
	assert.Equal(t, by, *thread.EscalatedBy, "first escalation audit preserved")
}
