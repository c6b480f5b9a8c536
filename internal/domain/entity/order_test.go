package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem_SnapshotsProduct(t *testing.T) {
	product := &Product{
		ID:       uuid.New(),
		Name:     "Мука пшеничная высший сорт",
		Unit:     "кг",
		PriceKZT: 250,
		Stock:    5000,
		MOQ:      50,
	}

	item, err := NewOrderItem(product, 100)
	require.NoError(t, err)

	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, product.Name, item.ProductName)
	assert.Equal(t, "кг", item.Unit)
	assert.Equal(t, int64(250), item.PriceKZT)
	assert.Equal(t, int64(25000), item.TotalKZT)

	// Later price changes must not affect the snapshot.
	product.PriceKZT = 999
	assert.Equal(t, int64(250), item.PriceKZT)
}

func TestNewOrderItem_MOQAndStock(t *testing.T) {
	product := &Product{ID: uuid.New(), Name: "Сахар", Unit: "кг", PriceKZT: 380, Stock: 30, MOQ: 25}

	_, err := NewOrderItem(product, 10)
	require.Error(t, err, "below moq")

	_, err = NewOrderItem(product, 31)
	require.Error(t, err, "exceeds stock")

	_, err = NewOrderItem(product, 25)
	require.NoError(t, err)
}

func TestSumItems_ScenarioTotal(t *testing.T) {
	// [{price:180, qty:100}, {price:850, qty:40}] → 18000 + 34000 = 52000
	items := []OrderItem{
		{PriceKZT: 180, Quantity: 100, TotalKZT: 18000},
		{PriceKZT: 850, Quantity: 40, TotalKZT: 34000},
	}

	assert.Equal(t, int64(52000), SumItems(items))
}

func TestOrder_RecalculateRestoresInvariant(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{PriceKZT: 180, Quantity: 100},
			{PriceKZT: 850, Quantity: 40},
		},
	}

	order.Recalculate()

	assert.Equal(t, int64(18000), order.Items[0].TotalKZT)
	assert.Equal(t, int64(34000), order.Items[1].TotalKZT)
	assert.Equal(t, int64(52000), order.TotalKZT)
	assert.Equal(t, SumItems(order.Items), order.TotalKZT)
}

func TestOrder_AcceptReject(t *testing.T) {
	by := uuid.New()
	at := time.Now()

	order := &Order{ID: uuid.New(), Status: OrderPending}
	require.NoError(t, order.Accept(by, at))
	assert.Equal(t, OrderAccepted, order.Status)
	require.NotNil(t, order.RespondedAt)
	assert.Equal(t, by, *order.RespondedBy)

	order = &Order{ID: uuid.New(), Status: OrderPending}
	require.NoError(t, order.Reject(by, at))
	assert.Equal(t, OrderRejected, order.Status)
}

func TestOrder_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		call func(o *Order) error
	}{
		{name: "accept accepted", from: OrderAccepted, call: func(o *Order) error { return o.Accept(uuid.New(), time.Now()) }},
		{name: "accept completed", from: OrderCompleted, call: func(o *Order) error { return o.Accept(uuid.New(), time.Now()) }},
		{name: "reject rejected", from: OrderRejected, call: func(o *Order) error { return o.Reject(uuid.New(), time.Now()) }},
		{name: "complete pending", from: OrderPending, call: func(o *Order) error { return o.Complete() }},
		{name: "cancel pending", from: OrderPending, call: func(o *Order) error { return o.Cancel() }},
		{name: "cancel completed", from: OrderCompleted, call: func(o *Order) error { return o.Cancel() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{ID: uuid.New(), Status: tt.from}

			err := tt.call(order)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			assert.Equal(t, tt.from, order.Status)
		})
	}
}

func TestOrder_AcceptedLifecycle(t *testing.T) {
	order := &Order{ID: uuid.New(), Status: OrderPending}
	require.NoError(t, order.Accept(uuid.New(), time.Now()))

	require.NoError(t, order.Complete())
	assert.Equal(t, OrderCompleted, order.Status)

	order = &Order{ID: uuid.New(), Status: OrderAccepted}
	require.NoError(t, order.Cancel())
	assert.Equal(t, OrderCancelled, order.Status)
}

func TestProduct_Validate(t *testing.T) {
	valid := Product{Name: "Соль", Unit: "кг", PriceKZT: 120, Stock: 8000, MOQ: 100}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *Product)
	}{
		{name: "empty name", mutate: func(p *Product) { p.Name = "" }},
		{name: "empty unit", mutate: func(p *Product) { p.Unit = "" }},
		{name: "zero price", mutate: func(p *Product) { p.PriceKZT = 0 }},
		{name: "negative price", mutate: func(p *Product) { p.PriceKZT = -5 }},
		{name: "zero moq", mutate: func(p *Product) { p.MOQ = 0 }},
		{name: "negative stock", mutate: func(p *Product) { p.Stock = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestActiveProducts_ExcludesArchived(t *testing.T) {
	live := &Product{ID: uuid.New(), Name: "Мука", Unit: "кг", PriceKZT: 250, MOQ: 50}
	archived := &Product{ID: uuid.New(), Name: "Сахар", Unit: "кг", PriceKZT: 380, MOQ: 25, Archived: true}

	got := ActiveProducts([]*Product{live, archived})

	require.Len(t, got, 1)
	assert.Equal(t, live, got[0])
}
