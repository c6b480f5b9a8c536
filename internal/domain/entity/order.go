package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderRejected  OrderStatus = "rejected"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is a line of an order. Name, unit and price are snapshotted from
// the product at order creation; later catalog changes never touch an
// existing order.
type OrderItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Unit        string    `json:"unit"`
	Quantity    int       `json:"quantity"`
	PriceKZT    int64     `json:"priceKZT"`
	TotalKZT    int64     `json:"totalKZT"`
}

// Order is a purchase placed by a consumer against a supplier company.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	SupplierID  uuid.UUID   `json:"supplierId"`
	ConsumerID  uuid.UUID   `json:"consumerId"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
	TotalKZT    int64       `json:"totalKZT"`
	Notes       string      `json:"notes,omitempty"`
	RespondedAt *time.Time  `json:"respondedAt,omitempty"`
	RespondedBy *uuid.UUID  `json:"respondedBy,omitempty"`
	Archived    bool        `json:"archived"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SupplierKey implements Scoped.
func (o *Order) SupplierKey() uuid.UUID { return o.SupplierID }

// ConsumerKey implements Scoped.
func (o *Order) ConsumerKey() uuid.UUID { return o.ConsumerID }

// NewOrderItem snapshots a product into an order line, enforcing MOQ and
// stock at creation time.
func NewOrderItem(product *Product, quantity int) (OrderItem, error) {
	if quantity < product.MOQ {
		return OrderItem{}, errors.Errorf("quantity %d below moq %d for product %s", quantity, product.MOQ, product.ID)
	}
	if quantity > product.Stock {
		return OrderItem{}, errors.Errorf("quantity %d exceeds stock %d for product %s", quantity, product.Stock, product.ID)
	}

	return OrderItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Unit:        product.Unit,
		Quantity:    quantity,
		PriceKZT:    product.PriceKZT,
		TotalKZT:    product.PriceKZT * int64(quantity),
	}, nil
}

// SumItems returns the order total as the sum of line totals.
func SumItems(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.TotalKZT
	}

	return total
}

// Recalculate restores the totalKZT invariant from the current item set.
func (o *Order) Recalculate() {
	for i := range o.Items {
		o.Items[i].TotalKZT = o.Items[i].PriceKZT * int64(o.Items[i].Quantity)
	}
	o.TotalKZT = SumItems(o.Items)
}

// Accept moves a pending order to accepted.
func (o *Order) Accept(by uuid.UUID, at time.Time) error {
	return o.respond(OrderAccepted, by, at)
}

// Reject moves a pending order to rejected.
func (o *Order) Reject(by uuid.UUID, at time.Time) error {
	return o.respond(OrderRejected, by, at)
}

func (o *Order) respond(to OrderStatus, by uuid.UUID, at time.Time) error {
	if o.Status != OrderPending {
		return errors.Wrapf(ErrInvalidTransition, "order %s is %s, not pending", o.ID, o.Status)
	}
	o.Status = to
	o.RespondedAt = &at
	o.RespondedBy = &by

	return nil
}

// Complete moves an accepted order to completed.
func (o *Order) Complete() error {
	if o.Status != OrderAccepted {
		return errors.Wrapf(ErrInvalidTransition, "order %s is %s, not accepted", o.ID, o.Status)
	}
	o.Status = OrderCompleted

	return nil
}

// Cancel moves an accepted order to cancelled.
func (o *Order) Cancel() error {
	if o.Status != OrderAccepted {
		return errors.Wrapf(ErrInvalidTransition, "order %s is %s, not accepted", o.ID, o.Status)
	}
	o.Status = OrderCancelled

	return nil
}
