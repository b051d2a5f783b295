package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopperhq/shopper/internal/domain/model"
	pkgAuth "github.com/shopperhq/shopper/internal/pkg/auth"
	"github.com/shopperhq/shopper/internal/usecase"
)

// AuthFacadeStub simulates token operations of the facade.
type AuthFacadeStub struct {
	IssueFn func(pkgAuth.Identity) (string, error)
	ParseFn func(string) (pkgAuth.Identity, error)
}

// IssueToken returns a deterministic token.
func (s AuthFacadeStub) IssueToken(identity pkgAuth.Identity) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(identity)
	}
	return "token", nil
}

// ParseToken returns the stored identity for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: 1, Role: model.RoleCustomer}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, int64, usecase.CreateOrderInput) (*usecase.OrderDetails, error)
	ByIDFn         func(context.Context, int64, usecase.Actor) (*usecase.OrderDetails, error)
	ByNumberFn     func(context.Context, string) (*usecase.OrderDetails, error)
	ForUserFn      func(context.Context, int64) ([]usecase.OrderDetails, error)
	CancelFn       func(context.Context, int64, int64, string) error
	UpdateStatusFn func(context.Context, int64, usecase.StatusUpdateInput, usecase.Actor) error
}

// CreateOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*usecase.OrderDetails, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, input)
	}
	return &usecase.OrderDetails{Order: model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
}

// OrderByID returns the configured order details.
func (s OrderFacadeStub) OrderByID(ctx context.Context, orderID int64, actor usecase.Actor) (*usecase.OrderDetails, error) {
	if s.ByIDFn != nil {
		return s.ByIDFn(ctx, orderID, actor)
	}
	return &usecase.OrderDetails{Order: model.Order{ID: orderID, UserID: actor.UserID}}, nil
}

// OrderByNumber returns the configured order details.
func (s OrderFacadeStub) OrderByNumber(ctx context.Context, number string) (*usecase.OrderDetails, error) {
	if s.ByNumberFn != nil {
		return s.ByNumberFn(ctx, number)
	}
	return &usecase.OrderDetails{Order: model.Order{ID: 1, Number: number}}, nil
}

// OrdersForUser returns predefined orders for the given user.
func (s OrderFacadeStub) OrdersForUser(ctx context.Context, userID int64) ([]usecase.OrderDetails, error) {
	if s.ForUserFn != nil {
		return s.ForUserFn(ctx, userID)
	}
	return []usecase.OrderDetails{{Order: model.Order{ID: 1, UserID: userID}}}, nil
}

// CancelOrder executes the configured cancellation handler.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID, userID int64, reason string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, userID, reason)
	}
	return nil
}

// UpdateOrderStatus executes the configured transition handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, input usecase.StatusUpdateInput, actor usecase.Actor) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, input, actor)
	}
	return nil
}

// VendorFacadeStub simulates vendor operations.
type VendorFacadeStub struct {
	OrdersFn       func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, int64, usecase.StatusUpdateInput) error
	DeliverFn      func(context.Context, int64, int64) error
	DeclineFn      func(context.Context, int64, int64) error
	AnalyticsFn    func(context.Context, int64) (*usecase.VendorAnalytics, error)
	DashboardFn    func(context.Context, int64) (*usecase.VendorDashboard, error)
}

// VendorOrders returns the configured vendor order views.
func (s VendorFacadeStub) VendorOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1}}, nil
}

// VendorUpdateStatus executes the configured transition handler.
func (s VendorFacadeStub) VendorUpdateStatus(ctx context.Context, userID, orderID int64, input usecase.StatusUpdateInput) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, userID, orderID, input)
	}
	return nil
}

// VendorDeliver executes the configured delivery handler.
func (s VendorFacadeStub) VendorDeliver(ctx context.Context, userID, orderID int64) error {
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, userID, orderID)
	}
	return nil
}

// VendorDecline executes the configured decline handler.
func (s VendorFacadeStub) VendorDecline(ctx context.Context, userID, orderID int64) error {
	if s.DeclineFn != nil {
		return s.DeclineFn(ctx, userID, orderID)
	}
	return nil
}

// VendorAnalytics returns configured analytics.
func (s VendorFacadeStub) VendorAnalytics(ctx context.Context, userID int64) (*usecase.VendorAnalytics, error) {
	if s.AnalyticsFn != nil {
		return s.AnalyticsFn(ctx, userID)
	}
	return &usecase.VendorAnalytics{}, nil
}

// VendorDashboard returns a configured dashboard.
func (s VendorFacadeStub) VendorDashboard(ctx context.Context, userID int64) (*usecase.VendorDashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, userID)
	}
	return &usecase.VendorDashboard{}, nil
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	VendorFacadeStub
}

// WorkerFacadeStub mimics dispatcher interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Notification
	PendingFn      func(context.Context, int) ([]model.Notification, error)
	batchCallCount int32
}

// PendingNotifications returns batches from the configured queue.
func (s *WorkerFacadeStub) PendingNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// NotifierStub records delivered notifications.
type NotifierStub struct {
	NotifyFn  func(context.Context, model.Notification) error
	mu        sync.Mutex
	Delivered []model.Notification
}

// Notify records the notification or delegates to the override.
func (s *NotifierStub) Notify(ctx context.Context, notification model.Notification) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, notification)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Delivered = append(s.Delivered, notification)
	return nil
}

// DeliveredCount returns how many notifications were recorded.
func (s *NotifierStub) DeliveredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Delivered)
}
