package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductSales is one row of the top-products ranking.
type ProductSales struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	TotalSold   int       `json:"totalSold"`
	RevenueKZT  int64     `json:"revenueKZT"`
}

// AnalyticsSummary aggregates a supplier company's marketplace activity.
type AnalyticsSummary struct {
	ActiveLinks      int   `json:"activeLinks"`
	PendingLinks     int   `json:"pendingLinks"`
	PendingOrders    int   `json:"pendingOrders"`
	AcceptedOrders   int   `json:"acceptedOrders"`
	CompletedOrders  int   `json:"completedOrders"`
	RevenueKZT       int64 `json:"revenueKZT"` // sum of completed order totals
	OpenComplaints   int   `json:"openComplaints"`
	OpenIncidents    int   `json:"openIncidents"`
	ActiveProducts   int   `json:"activeProducts"`
	ArchivedProducts int   `json:"archivedProducts"`

	// KPI block over all non-cancelled orders
	OrderCount       int            `json:"orderCount"`
	GMVKZT           int64          `json:"gmvKZT"`
	AvgOrderValueKZT float64        `json:"avgOrderValueKZT"`
	TopProducts      []ProductSales `json:"topProducts"`
}

// AnalyticsUsecase defines the interface for supplier analytics.
type AnalyticsUsecase interface {
	// Summary aggregates the actor's company activity. Requires the
	// canViewAnalytics permission.
	Summary(ctx context.Context, actor *entity.User) (*AnalyticsSummary, error)
}
