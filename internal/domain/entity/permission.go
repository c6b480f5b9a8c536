package entity

// Permission identifies a single capability from the role table.
type Permission string

const (
	PermApproveLinks     Permission = "canApproveLinks"
	PermManageCatalog    Permission = "canManageCatalog"
	PermManageOrders     Permission = "canManageOrders"
	PermChat             Permission = "canChat"
	PermHandleComplaints Permission = "canHandleComplaints"
	PermEscalate         Permission = "canEscalate"
	PermManageIncidents  Permission = "canManageIncidents"
	PermManageUsers      Permission = "canManageUsers"
	PermViewAnalytics    Permission = "canViewAnalytics"
)

// Permissions is the fixed capability set granted to a role.
type Permissions struct {
	CanApproveLinks     bool `json:"canApproveLinks"`
	CanManageCatalog    bool `json:"canManageCatalog"`
	CanManageOrders     bool `json:"canManageOrders"`
	CanChat             bool `json:"canChat"`
	CanHandleComplaints bool `json:"canHandleComplaints"`
	CanEscalate         bool `json:"canEscalate"`
	CanManageIncidents  bool `json:"canManageIncidents"`
	CanManageUsers      bool `json:"canManageUsers"`
	CanViewAnalytics    bool `json:"canViewAnalytics"`
}

// PermissionsFor returns the capability set for a role. It is a pure, total
// lookup over the four-member role set: Owner and Admin carry identical full
// permissions, Sales is limited to order/chat/complaint work, and Consumer to
// ordering and chat. An unknown role gets the empty set.
func PermissionsFor(role Role) Permissions {
	switch role {
	case RoleOwner, RoleAdmin:
		return Permissions{
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
	case RoleSales:
		return Permissions{
			CanManageOrders:     true,
			CanChat:             true,
			CanHandleComplaints: true,
			CanEscalate:         true,
		}
	case RoleConsumer:
		return Permissions{
			CanManageOrders: true,
			CanChat:         true,
		}
	default:
		return Permissions{}
	}
}

// Has reports whether the named permission is set.
func (p Permissions) Has(perm Permission) bool {
	switch perm {
	case PermApproveLinks:
		return p.CanApproveLinks
	case PermManageCatalog:
		return p.CanManageCatalog
	case PermManageOrders:
		return p.CanManageOrders
	case PermChat:
		return p.CanChat
	case PermHandleComplaints:
		return p.CanHandleComplaints
	case PermEscalate:
		return p.CanEscalate
	case PermManageIncidents:
		return p.CanManageIncidents
	case PermManageUsers:
		return p.CanManageUsers
	case PermViewAnalytics:
		return p.CanViewAnalytics
	default:
		return false
	}
}

// HasPermission is shorthand for PermissionsFor(role).Has(perm).
func HasPermission(role Role, perm Permission) bool {
	return PermissionsFor(role).Has(perm)
}

// CanResolveEscalatedComplaints reports whether the role may resolve a
// complaint that has been escalated. Sales can escalate but not resolve
// an escalation.
func CanResolveEscalatedComplaints(role Role) bool {
	return role == RoleOwner || role == RoleAdmin
}
