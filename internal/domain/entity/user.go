package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Supplier staff (owner, admin,
// sales) carry the UUID of their supplier company; consumers do not belong to
// a supplier and SupplierID is nil for them. CompanyName is a display field
// only and never used for scoping.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	SupplierID   *uuid.UUID `json:"supplierId,omitempty"`
	CompanyName  string     `json:"companyName,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Permissions returns the capability set derived from the user's role.
func (u *User) Permissions() Permissions {
	return PermissionsFor(u.Role)
}

// Supplier represents a supplier company. Supplier-side records (links,
// orders, threads, complaints) are keyed by the company's UUID, never by an
// individual staff user.
type Supplier struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	BIN         string    `json:"bin"` // business identification number
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Description string    `json:"description,omitempty"`
	Verified    bool      `json:"verified"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
