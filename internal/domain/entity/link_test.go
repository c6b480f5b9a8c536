package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingLink() *Link {
	return &Link{
		ID:          uuid.New(),
		SupplierID:  uuid.New(),
		ConsumerID:  uuid.New(),
		Status:      LinkPending,
		RequestedAt: time.Now().Add(-time.Hour),
	}
}

func TestLink_Approve(t *testing.T) {
	link := pendingLink()
	by := uuid.New()
	at := time.Now()

	require.NoError(t, link.Approve(by, at))

	assert.Equal(t, LinkApproved, link.Status)
	require.NotNil(t, link.RespondedAt)
	assert.Equal(t, at, *link.RespondedAt)
	require.NotNil(t, link.RespondedBy)
	assert.Equal(t, by, *link.RespondedBy)
}

func TestLink_Decline(t *testing.T) {
	link := pendingLink()

	require.NoError(t, link.Decline(uuid.New(), time.Now()))

	assert.Equal(t, LinkDeclined, link.Status)
	assert.NotNil(t, link.RespondedAt)
}

func TestLink_ApproveNonPending(t *testing.T) {
	for _, status := range []LinkStatus{LinkApproved, LinkDeclined, LinkBlocked} {
		t.Run(string(status), func(t *testing.T) {
			link := pendingLink()
			link.Status = status

			err := link.Approve(uuid.New(), time.Now())

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			assert.Equal(t, status, link.Status)
		})
	}
}

func TestLink_BlockUnblock(t *testing.T) {
	link := pendingLink()

	// Only approved links can be blocked.
	require.Error(t, link.Block())

	require.NoError(t, link.Approve(uuid.New(), time.Now()))
	require.NoError(t, link.Block())
	assert.Equal(t, LinkBlocked, link.Status)

	require.NoError(t, link.Unblock())
	assert.Equal(t, LinkApproved, link.Status)

	// Unblocking an approved link is an error.
	require.Error(t, link.Unblock())
}

func TestVisibleTo_ConsumerSeesOnlyOwnLinks(t *testing.T) {
	consumer := uuid.New()
	other := uuid.New()
	supplier := uuid.New()

	mine := []*Link{
		{ID: uuid.New(), SupplierID: supplier, ConsumerID: consumer, Status: LinkApproved},
		{ID: uuid.New(), SupplierID: uuid.New(), ConsumerID: consumer, Status: LinkPending},
	}
	others := []*Link{
		{ID: uuid.New(), SupplierID: supplier, ConsumerID: other, Status: LinkApproved},
	}

	scope, err := ScopeFor(&User{ID: consumer, Role: RoleConsumer})
	require.NoError(t, err)

	got := VisibleTo(scope, append(append([]*Link{}, mine...), others...))

	assert.Equal(t, mine, got)
}

func TestVisibleTo_SupplierStaffSeeCompanyLinks(t *testing.T) {
	supplier := uuid.New()
	staff := &User{ID: uuid.New(), Role: RoleSales, SupplierID: &supplier}

	records := []*Link{
		{ID: uuid.New(), SupplierID: supplier, ConsumerID: uuid.New()},
		{ID: uuid.New(), SupplierID: uuid.New(), ConsumerID: uuid.New()},
		{ID: uuid.New(), SupplierID: supplier, ConsumerID: uuid.New()},
	}

	scope, err := ScopeFor(staff)
	require.NoError(t, err)

	got := VisibleTo(scope, records)

	require.Len(t, got, 2)
	assert.Equal(t, records[0], got[0])
	assert.Equal(t, records[2], got[1])
}

func TestScopeFor_SupplierStaffWithoutCompany(t *testing.T) {
	_, err := ScopeFor(&User{ID: uuid.New(), Role: RoleAdmin})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScopeUnresolved))
}
