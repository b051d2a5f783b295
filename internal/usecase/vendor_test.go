package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/test"
	. "github.com/shopperhq/shopper/internal/usecase"
)

func newVendorUseCase(t *testing.T) (*VendorUseCase, *test.FactoryStub) {
	t.Helper()
	orderUC, factory := newOrderUseCase(t)
	factory.VendorRepo.ByUserID[20] = &model.Vendor{ID: 3, UserID: 20, StoreName: "keys"}
	return NewVendorUseCase(factory, orderUC), factory
}

func seedVendorOrders(factory *test.FactoryStub) {
	created := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	factory.OrderRepo.Orders = []model.Order{
		{
			ID: 1, UserID: 7, Status: model.OrderStatusPending, CreatedAt: created,
			Items: []model.OrderItem{
				{ProductID: 1, VendorID: 3, ProductName: "keyboard", Quantity: 2, Total: 200},
				{ProductID: 2, VendorID: 4, ProductName: "mouse", Quantity: 1, Total: 30},
			},
		},
		{
			ID: 2, UserID: 8, Status: model.OrderStatusProcessing, CreatedAt: created.AddDate(0, 1, 0),
			Items: []model.OrderItem{
				{ProductID: 3, VendorID: 3, ProductName: "monitor", Quantity: 1, Total: 250},
			},
		},
		{
			ID: 3, UserID: 9, Status: model.OrderStatusDelivered, CreatedAt: created.AddDate(0, 1, 0),
			Items: []model.OrderItem{
				{ProductID: 2, VendorID: 4, ProductName: "mouse", Quantity: 2, Total: 60},
			},
		},
	}
}

func TestVendorOrders(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	seedVendorOrders(factory)

	orders, err := uc.Orders(context.Background(), 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected two vendor orders, got %d", len(orders))
	}
	for _, order := range orders {
		for _, item := range order.Items {
			if item.VendorID != 3 {
				t.Fatalf("expected only vendor items in view, got vendor %d", item.VendorID)
			}
		}
	}
}

func TestVendorOrdersRequiresProfile(t *testing.T) {
	uc, _ := newVendorUseCase(t)
	if _, err := uc.Orders(context.Background(), 999); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized without profile, got %v", err)
	}
}

func TestVendorDeliver(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	factory.OrderRepo.Orders = []model.Order{{
		ID: 1, UserID: 7, Status: model.OrderStatusShipped,
		Items: []model.OrderItem{{ProductID: 1, VendorID: 3}},
	}}

	if err := uc.Deliver(context.Background(), 20, 1); err != nil {
		t.Fatalf("deliver failed: %v", err)
	}
	call := factory.OrderRepo.UpdateCalls[0]
	if call.From != model.OrderStatusShipped || call.To != model.OrderStatusDelivered {
		t.Fatalf("unexpected update call %+v", call)
	}
}

func TestVendorDeliverRequiresShipped(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	factory.OrderRepo.Orders = []model.Order{{
		ID: 1, UserID: 7, Status: model.OrderStatusPending,
		Items: []model.OrderItem{{ProductID: 1, VendorID: 3}},
	}}

	if err := uc.Deliver(context.Background(), 20, 1); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestVendorDecline(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	factory.OrderRepo.Orders = []model.Order{{
		ID: 1, UserID: 7, Status: model.OrderStatusPending,
		Items: []model.OrderItem{{ProductID: 1, VendorID: 3, Quantity: 2}},
	}}

	if err := uc.Decline(context.Background(), 20, 1); err != nil {
		t.Fatalf("decline failed: %v", err)
	}
	if len(factory.OrderRepo.CancelCalls) != 1 {
		t.Fatalf("expected decline to cancel, got %+v", factory.OrderRepo.CancelCalls)
	}
	if factory.OrderRepo.CancelCalls[0].Reason != "declined by vendor" {
		t.Fatalf("unexpected reason %q", factory.OrderRepo.CancelCalls[0].Reason)
	}
}

func TestVendorDeclineForeignOrder(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	factory.OrderRepo.Orders = []model.Order{{
		ID: 1, UserID: 7, Status: model.OrderStatusPending,
		Items: []model.OrderItem{{ProductID: 2, VendorID: 4}},
	}}

	if err := uc.Decline(context.Background(), 20, 1); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVendorAnalytics(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	seedVendorOrders(factory)

	analytics, err := uc.Analytics(context.Background(), 20)
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	if analytics.TotalOrders != 2 {
		t.Fatalf("expected two orders, got %d", analytics.TotalOrders)
	}
	if analytics.TotalRevenue != 450 {
		t.Fatalf("expected revenue 450, got %v", analytics.TotalRevenue)
	}
	if len(analytics.TopProducts) != 2 || analytics.TopProducts[0].ProductID != 3 {
		t.Fatalf("unexpected top products %+v", analytics.TopProducts)
	}
	if len(analytics.RevenueByMonth) != 2 {
		t.Fatalf("expected two months, got %+v", analytics.RevenueByMonth)
	}
	if analytics.RevenueByMonth[0].Month != "2025-02" || analytics.RevenueByMonth[0].Revenue != 200 {
		t.Fatalf("unexpected first month %+v", analytics.RevenueByMonth[0])
	}
}

func TestVendorDashboard(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	seedVendorOrders(factory)

	dashboard, err := uc.Dashboard(context.Background(), 20)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dashboard.TotalOrders != 2 {
		t.Fatalf("expected two orders, got %d", dashboard.TotalOrders)
	}
	if dashboard.PendingOrders != 2 {
		t.Fatalf("expected two open orders, got %d", dashboard.PendingOrders)
	}
	if dashboard.TotalRevenue != 450 {
		t.Fatalf("expected revenue 450, got %v", dashboard.TotalRevenue)
	}
	if len(dashboard.RecentOrders) != 2 {
		t.Fatalf("expected two recent orders, got %d", len(dashboard.RecentOrders))
	}
	for _, order := range dashboard.RecentOrders {
		for _, item := range order.Items {
			if item.VendorID != 3 {
				t.Fatal("expected vendor-scoped recent orders")
			}
		}
	}
}

func TestVendorDashboardRecentLimit(t *testing.T) {
	uc, factory := newVendorUseCase(t)
	for i := int64(1); i <= 8; i++ {
		factory.OrderRepo.Orders = append(factory.OrderRepo.Orders, model.Order{
			ID: i, UserID: 7, Status: model.OrderStatusPending,
			Items: []model.OrderItem{{ProductID: i, VendorID: 3, Total: 10}},
		})
	}

	dashboard, err := uc.Dashboard(context.Background(), 20)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if len(dashboard.RecentOrders) != 5 {
		t.Fatalf("expected five recent orders, got %d", len(dashboard.RecentOrders))
	}
	if dashboard.TotalOrders != 8 {
		t.Fatalf("expected eight orders, got %d", dashboard.TotalOrders)
	}
}
