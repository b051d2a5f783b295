package repository

import (
	"context"

	"github.com/shopperhq/shopper/internal/domain/model"
)

// NotificationRepository stores buyer notifications for async delivery.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	// SelectBatchForDelivery claims up to limit undelivered notifications,
	// stamping them delivered within the claiming transaction so concurrent
	// dispatchers never pick the same rows.
	SelectBatchForDelivery(ctx context.Context, limit int) ([]model.Notification, error)
}
