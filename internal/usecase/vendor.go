package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/domain/repository"
	"github.com/shopperhq/shopper/internal/pricing"
	"github.com/shopperhq/shopper/internal/vendorview"
)

const topProductsLimit = 5

// VendorAnalytics aggregates a vendor's sales figures.
type VendorAnalytics struct {
	TopProducts    []vendorview.ProductSales
	RevenueByMonth []vendorview.MonthlyRevenue
	TotalRevenue   float64
	TotalOrders    int
}

// VendorDashboard summarises a vendor's current workload.
type VendorDashboard struct {
	PendingOrders int
	TotalOrders   int
	TotalRevenue  float64
	RecentOrders  []model.Order
}

// VendorUseCase exposes vendor-scoped order views and status operations.
type VendorUseCase struct {
	orders  repository.OrderRepository
	vendors repository.VendorRepository
	orderUC *OrderUseCase
}

// NewVendorUseCase constructs VendorUseCase.
func NewVendorUseCase(repos repository.Factory, orderUC *OrderUseCase) *VendorUseCase {
	return &VendorUseCase{orders: repos.Orders(), vendors: repos.Vendors(), orderUC: orderUC}
}

// Orders lists the vendor's orders as vendor-scoped views: shared order-level
// fields plus only the vendor's own items.
func (u *VendorUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	vendor, err := u.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}
	views := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		views = append(views, vendorview.Build(order, vendor.ID))
	}
	return views, nil
}

// UpdateStatus transitions an order on behalf of the vendor. Ownership and the
// transition table are enforced by the order use case.
func (u *VendorUseCase) UpdateStatus(ctx context.Context, userID, orderID int64, input StatusUpdateInput) error {
	return u.orderUC.UpdateStatus(ctx, orderID, input, Actor{UserID: userID, Role: model.RoleVendor})
}

// Deliver marks the order delivered. Only shipped orders can be delivered.
func (u *VendorUseCase) Deliver(ctx context.Context, userID, orderID int64) error {
	return u.UpdateStatus(ctx, userID, orderID, StatusUpdateInput{Status: string(model.OrderStatusDelivered)})
}

// Decline cancels the order on the vendor's initiative. It goes through the
// same cancellation routine as a buyer cancellation, so stock is restored.
func (u *VendorUseCase) Decline(ctx context.Context, userID, orderID int64) error {
	return u.UpdateStatus(ctx, userID, orderID, StatusUpdateInput{Status: string(model.OrderStatusCancelled)})
}

// Analytics computes top products and monthly revenue over the vendor's item
// subset of its orders.
func (u *VendorUseCase) Analytics(ctx context.Context, userID int64) (*VendorAnalytics, error) {
	vendor, err := u.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}

	return &VendorAnalytics{
		TopProducts:    vendorview.TopProducts(vendor.ID, orders, topProductsLimit),
		RevenueByMonth: vendorview.RevenueByMonth(vendor.ID, orders),
		TotalRevenue:   vendorRevenue(vendor.ID, orders),
		TotalOrders:    len(orders),
	}, nil
}

// Dashboard summarises the vendor's open workload and recent orders.
func (u *VendorUseCase) Dashboard(ctx context.Context, userID int64) (*VendorDashboard, error) {
	vendor, err := u.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &VendorDashboard{
		TotalOrders:  len(orders),
		TotalRevenue: vendorRevenue(vendor.ID, orders),
	}
	for _, order := range orders {
		if order.Status == model.OrderStatusPending || order.Status == model.OrderStatusProcessing {
			dashboard.PendingOrders++
		}
	}
	for i, order := range orders {
		if i == 5 {
			break
		}
		dashboard.RecentOrders = append(dashboard.RecentOrders, vendorview.Build(order, vendor.ID))
	}
	return dashboard, nil
}

func (u *VendorUseCase) resolve(ctx context.Context, userID int64) (*model.Vendor, error) {
	vendor, err := u.vendors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor profile not found", domainErrors.ErrUnauthorized)
		}
		return nil, err
	}
	return vendor, nil
}

func vendorRevenue(vendorID int64, orders []model.Order) float64 {
	var sum float64
	for _, order := range orders {
		for _, item := range order.Items {
			if item.VendorID == vendorID {
				sum += item.Total
			}
		}
	}
	return pricing.Round(sum)
}
