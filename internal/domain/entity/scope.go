package entity

import (
	"errors"

	"github.com/google/uuid"
)

// ErrScopeUnresolved is returned when a session user cannot be mapped to a
// canonical visibility key (a supplier-side user without a company).
var ErrScopeUnresolved = errors.New("visibility scope cannot be resolved for user")

// Scope is the canonical visibility key of a session, resolved once at
// session creation. Consumer-side records are matched on the consumer user's
// UUID, supplier-side records on the supplier company UUID. There is no
// fallback key of any kind.
type Scope struct {
	Role       Role
	UserID     uuid.UUID
	SupplierID uuid.UUID // zero value unless Role.IsSupplierSide()
}

// ScopeFor resolves the canonical scope for a user.
func ScopeFor(user *User) (Scope, error) {
	scope := Scope{Role: user.Role, UserID: user.ID}
	if user.Role.IsSupplierSide() {
		if user.SupplierID == nil || *user.SupplierID == uuid.Nil {
			return Scope{}, ErrScopeUnresolved
		}
		scope.SupplierID = *user.SupplierID
	}

	return scope, nil
}

// Scoped is implemented by records that carry the two marketplace foreign
// keys, letting one filter serve links, orders, threads and complaints.
type Scoped interface {
	SupplierKey() uuid.UUID
	ConsumerKey() uuid.UUID
}

// Sees reports whether a record is visible under the scope: consumers see
// records keyed by their own user ID, supplier staff see records keyed by
// their company ID.
func (s Scope) Sees(record Scoped) bool {
	if s.Role == RoleConsumer {
		return record.ConsumerKey() == s.UserID
	}

	return record.SupplierKey() == s.SupplierID
}

// VisibleTo returns the subset of records visible under the scope, preserving
// order.
func VisibleTo[T Scoped](scope Scope, records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if scope.Sees(r) {
			out = append(out, r)
		}
	}

	return out
}
