package model

import "time"

// NotificationType classifies buyer notifications.
type NotificationType string

const (
	NotificationOrderPlaced    NotificationType = "OrderPlaced"
	NotificationOrderCancelled NotificationType = "OrderCancelled"
	NotificationOrderStatus    NotificationType = "OrderStatus"
)

// Notification is a buyer-facing message recorded alongside an order mutation
// and delivered asynchronously by the dispatcher worker.
type Notification struct {
	ID          int64
	UserID      int64
	OrderID     int64
	Type        NotificationType
	Title       string
	Message     string
	DeliveredAt *time.Time
	CreatedAt   time.Time
}
