package handlers

import (
	"context"

	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/pkg/auth"
	"github.com/shopperhq/shopper/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	IssueToken(identity auth.Identity) (string, error)
	ParseToken(token string) (auth.Identity, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID int64, input usecase.CreateOrderInput) (*usecase.OrderDetails, error)
	OrderByID(ctx context.Context, orderID int64, actor usecase.Actor) (*usecase.OrderDetails, error)
	OrderByNumber(ctx context.Context, number string) (*usecase.OrderDetails, error)
	OrdersForUser(ctx context.Context, userID int64) ([]usecase.OrderDetails, error)
	CancelOrder(ctx context.Context, orderID, userID int64, reason string) error
	UpdateOrderStatus(ctx context.Context, orderID int64, input usecase.StatusUpdateInput, actor usecase.Actor) error
}

// VendorFacade provides vendor-scoped order operations.
type VendorFacade interface {
	VendorOrders(ctx context.Context, userID int64) ([]model.Order, error)
	VendorUpdateStatus(ctx context.Context, userID, orderID int64, input usecase.StatusUpdateInput) error
	VendorDeliver(ctx context.Context, userID, orderID int64) error
	VendorDecline(ctx context.Context, userID, orderID int64) error
	VendorAnalytics(ctx context.Context, userID int64) (*usecase.VendorAnalytics, error)
	VendorDashboard(ctx context.Context, userID int64) (*usecase.VendorDashboard, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	VendorFacade
}
