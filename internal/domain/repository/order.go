package repository

import (
	"context"
	"time"

	"github.com/shopperhq/shopper/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Mutations are
// atomic: Create reserves stock, writes the order and its items in one
// transaction; Cancel flips the status and releases stock in one transaction.
type OrderRepository interface {
	// Create persists the order with its items, decrementing product stock per
	// item in submitted order. Returns domain errors ErrInsufficientStock,
	// ErrProductUnavailable, or ErrOrderNumberTaken without partial effects.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// ListByVendor returns orders containing at least one item owned by the vendor.
	ListByVendor(ctx context.Context, vendorID int64) ([]model.Order, error)
	// UpdateStatus transitions from -> to guarded by the current status;
	// returns ErrConflict when a concurrent write moved the order first.
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, tracking *string, estimatedDelivery *time.Time) error
	// Cancel sets status Cancelled guarded by the current status and restores
	// every item quantity exactly once.
	Cancel(ctx context.Context, orderID int64, from model.OrderStatus, reason string) error
}
