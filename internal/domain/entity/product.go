package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Product is a catalog entry owned by a supplier company. Prices are integer
// amounts of Kazakhstani tenge; fractional prices do not exist in this
// marketplace.
type Product struct {
	ID          uuid.UUID `json:"id"`
	SupplierID  uuid.UUID `json:"supplierId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Unit        string    `json:"unit"` // kg, piece, liter, ...
	PriceKZT    int64     `json:"priceKZT"`
	Stock       int       `json:"stock"`
	MOQ         int       `json:"moq"` // minimum order quantity
	ImageURL    string    `json:"imageUrl,omitempty"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate checks the product invariants: positive price, positive MOQ and a
// non-negative stock level.
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Unit == "" {
		return errors.New("product unit is required")
	}
	if p.PriceKZT <= 0 {
		return errors.Errorf("product price must be positive, got %d", p.PriceKZT)
	}
	if p.MOQ <= 0 {
		return errors.Errorf("product moq must be positive, got %d", p.MOQ)
	}
	if p.Stock < 0 {
		return errors.Errorf("product stock must be non-negative, got %d", p.Stock)
	}

	return nil
}

// ActiveProducts filters out archived entries, preserving order. Archived
// products never appear in default listings.
func ActiveProducts(products []*Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if !p.Archived {
			out = append(out, p)
		}
	}

	return out
}
