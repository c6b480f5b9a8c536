package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsFor_FullTable(t *testing.T) {
	full := Permissions{
		CanApproveLinks:     true,
		CanManageCatalog:    true,
		CanManageOrders:     true,
		CanChat:             true,
		CanHandleComplaints: true,
		CanEscalate:         true,
		CanManageIncidents:  true,
		CanManageUsers:      true,
		CanViewAnalytics:    true,
	}

	tests := []struct {
		role Role
		want Permissions
	}{
		{role: RoleOwner, want: full},
		{role: RoleAdmin, want: full},
		{role: RoleSales, want: Permissions{
			CanManageOrders:     true,
			CanChat:             true,
			CanHandleComplaints: true,
			CanEscalate:         true,
		}},
		{role: RoleConsumer, want: Permissions{
			CanManageOrders: true,
			CanChat:         true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionsFor(tt.role))
		})
	}
}

func TestPermissionsFor_UnknownRoleIsEmpty(t *testing.T) {
	assert.Equal(t, Permissions{}, PermissionsFor(Role("intern")))
}

func TestPermissions_Has(t *testing.T) {
	perms := PermissionsFor(RoleSales)

	assert.True(t, perms.Has(PermManageOrders))
	assert.True(t, perms.Has(PermChat))
	assert.True(t, perms.Has(PermHandleComplaints))
	assert.True(t, perms.Has(PermEscalate))
	assert.False(t, perms.Has(PermApproveLinks))
	assert.False(t, perms.Has(PermManageCatalog))
	assert.False(t, perms.Has(PermManageIncidents))
	assert.False(t, perms.Has(PermManageUsers))
	assert.False(t, perms.Has(PermViewAnalytics))
	assert.False(t, perms.Has(Permission("canDeleteEverything")))
}

func TestCanResolveEscalatedComplaints(t *testing.T) {
	assert.True(t, CanResolveEscalatedComplaints(RoleOwner))
	assert.True(t, CanResolveEscalatedComplaints(RoleAdmin))
	assert.False(t, CanResolveEscalatedComplaints(RoleSales))
	assert.False(t, CanResolveEscalatedComplaints(RoleConsumer))
}

func TestRole_IsSupplierSide(t *testing.T) {
	assert.True(t, RoleOwner.IsSupplierSide())
	assert.True(t, RoleAdmin.IsSupplierSide())
	assert.True(t, RoleSales.IsSupplierSide())
	assert.False(t, RoleConsumer.IsSupplierSide())
}
