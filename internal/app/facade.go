package app

import (
	"context"

	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/domain/repository"
	"github.com/shopperhq/shopper/internal/pkg/auth"
	"github.com/shopperhq/shopper/internal/usecase"
)

// StorefrontFacade aggregates the use cases behind one surface consumed by the
// HTTP handlers and the notification dispatcher.
type StorefrontFacade struct {
	strategy      auth.Strategy
	orders        *usecase.OrderUseCase
	vendor        *usecase.VendorUseCase
	notifications repository.NotificationRepository
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(strategy auth.Strategy, orders *usecase.OrderUseCase, vendor *usecase.VendorUseCase, repos repository.Factory) *StorefrontFacade {
	return &StorefrontFacade{
		strategy:      strategy,
		orders:        orders,
		vendor:        vendor,
		notifications: repos.Notifications(),
	}
}

func (f *StorefrontFacade) IssueToken(identity auth.Identity) (string, error) {
	return f.strategy.IssueToken(identity)
}

func (f *StorefrontFacade) ParseToken(token string) (auth.Identity, error) {
	return f.strategy.ParseToken(token)
}

func (f *StorefrontFacade) CreateOrder(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*usecase.OrderDetails, error) {
	return f.orders.Create(ctx, userID, input)
}

func (f *StorefrontFacade) OrderByID(ctx context.Context, orderID int64, actor usecase.Actor) (*usecase.OrderDetails, error) {
	return f.orders.OrderByID(ctx, orderID, actor)
}

func (f *StorefrontFacade) OrderByNumber(ctx context.Context, number string) (*usecase.OrderDetails, error) {
	return f.orders.OrderByNumber(ctx, number)
}

func (f *StorefrontFacade) OrdersForUser(ctx context.Context, userID int64) ([]usecase.OrderDetails, error) {
	return f.orders.OrdersForUser(ctx, userID)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, orderID, userID int64, reason string) error {
	return f.orders.Cancel(ctx, orderID, userID, reason)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, orderID int64, input usecase.StatusUpdateInput, actor usecase.Actor) error {
	return f.orders.UpdateStatus(ctx, orderID, input, actor)
}

func (f *StorefrontFacade) VendorOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.vendor.Orders(ctx, userID)
}

func (f *StorefrontFacade) VendorUpdateStatus(ctx context.Context, userID, orderID int64, input usecase.StatusUpdateInput) error {
	return f.vendor.UpdateStatus(ctx, userID, orderID, input)
}

func (f *StorefrontFacade) VendorDeliver(ctx context.Context, userID, orderID int64) error {
	return f.vendor.Deliver(ctx, userID, orderID)
}

func (f *StorefrontFacade) VendorDecline(ctx context.Context, userID, orderID int64) error {
	return f.vendor.Decline(ctx, userID, orderID)
}

func (f *StorefrontFacade) VendorAnalytics(ctx context.Context, userID int64) (*usecase.VendorAnalytics, error) {
	return f.vendor.Analytics(ctx, userID)
}

func (f *StorefrontFacade) VendorDashboard(ctx context.Context, userID int64) (*usecase.VendorDashboard, error) {
	return f.vendor.Dashboard(ctx, userID)
}

// PendingNotifications claims a batch of undelivered notifications for the dispatcher.
func (f *StorefrontFacade) PendingNotifications(ctx context.Context, limit int) ([]model.Notification, error) {
	return f.notifications.SelectBatchForDelivery(ctx, limit)
}
