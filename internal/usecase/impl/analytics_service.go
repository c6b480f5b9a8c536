package impl

import (
	"context"
	"log/slog"
	"sort"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// topProductLimit caps the ranked product list in the summary.
const topProductLimit = 10

// analyticsService implements the AnalyticsUsecase interface. The summary is
// computed from the same repositories the rest of the system writes through,
// so it is always consistent with what the staff sees elsewhere.
type analyticsService struct {
	linkRepo      repository.LinkRepository
	orderRepo     repository.OrderRepository
	complaintRepo repository.ComplaintRepository
	incidentRepo  repository.IncidentRepository
	productRepo   repository.ProductRepository
	logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	linkRepo repository.LinkRepository,
	orderRepo repository.OrderRepository,
	complaintRepo repository.ComplaintRepository,
	incidentRepo repository.IncidentRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		linkRepo:      linkRepo,
		orderRepo:     orderRepo,
		complaintRepo: complaintRepo,
		incidentRepo:  incidentRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

// Summary aggregates the actor's company activity.
func (srv *analyticsService) Summary(ctx context.Context, actor *entity.User) (*usecase.AnalyticsSummary, error) {
	if !actor.Permissions().CanViewAnalytics {
		return nil, domainerrors.ErrForbidden.WrapMessage("analytics requires canViewAnalytics")
	}

	scope, err := entity.ScopeFor(actor)
	if err != nil {
		return nil, domainerrors.ErrForbidden.WrapMessage("analytics access failed")
	}

	summary := &usecase.AnalyticsSummary{}

	links, err := srv.linkRepo.ListBySupplier(ctx, scope.SupplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list links")
	}
	for _, link := range links {
		switch link.Status {
		case entity.LinkApproved:
			summary.ActiveLinks++
		case entity.LinkPending:
			summary.PendingLinks++
		}
	}

	orders, err := srv.orderRepo.ListBySupplier(ctx, scope.SupplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	sales := map[uuid.UUID]*usecase.ProductSales{}
	for _, order := range orders {
		switch order.Status {
		case entity.OrderPending:
			summary.PendingOrders++
		case entity.OrderAccepted:
			summary.AcceptedOrders++
		case entity.OrderCompleted:
			summary.CompletedOrders++
			summary.RevenueKZT += order.TotalKZT
		}

		// Cancelled orders never turned into business.
		if order.Status == entity.OrderCancelled {
			continue
		}
		summary.OrderCount++
		summary.GMVKZT += order.TotalKZT
		for _, item := range order.Items {
			row, ok := sales[item.ProductID]
			if !ok {
				row = &usecase.ProductSales{ProductID: item.ProductID, ProductName: item.ProductName}
				sales[item.ProductID] = row
			}
			row.TotalSold += item.Quantity
			row.RevenueKZT += item.TotalKZT
		}
	}
	if summary.OrderCount > 0 {
		summary.AvgOrderValueKZT = float64(summary.GMVKZT) / float64(summary.OrderCount)
	}
	summary.TopProducts = rankProducts(sales, topProductLimit)

	complaints, err := srv.complaintRepo.ListBySupplier(ctx, scope.SupplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}
	for _, complaint := range complaints {
		switch complaint.Status {
		case entity.ComplaintOpen, entity.ComplaintInProgress, entity.ComplaintEscalated:
			summary.OpenComplaints++
		}
	}

	incidents, err := srv.incidentRepo.ListBySupplier(ctx, scope.SupplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incidents")
	}
	for _, incident := range incidents {
		if incident.Status != entity.IncidentResolved {
			summary.OpenIncidents++
		}
	}

	products, err := srv.productRepo.ListBySupplier(ctx, scope.SupplierID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	for _, product := range products {
		if product.Archived {
			summary.ArchivedProducts++
		} else {
			summary.ActiveProducts++
		}
	}

	return summary, nil
}

// rankProducts orders aggregated sales by revenue and keeps the top rows.
func rankProducts(sales map[uuid.UUID]*usecase.ProductSales, limit int) []usecase.ProductSales {
	ranked := make([]usecase.ProductSales, 0, len(sales))
	for _, row := range sales {
		ranked = append(ranked, *row)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RevenueKZT != ranked[j].RevenueKZT {
			return ranked[i].RevenueKZT > ranked[j].RevenueKZT
		}
		return ranked[i].ProductName < ranked[j].ProductName
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
