package model

import "time"

// Order describes one checkout transaction by a buyer, possibly spanning
// several vendors. Orders are never deleted; cancellation is a status.
type Order struct {
	ID                 int64
	UserID             int64
	Number             string
	Status             OrderStatus
	Subtotal           float64
	TaxAmount          float64
	ShippingAmount     float64
	DiscountAmount     float64
	TotalAmount        float64
	PaymentMethod      PaymentMethod
	PaymentStatus      PaymentStatus
	Notes              string
	ShippingAddressID  int64
	BillingAddressID   int64
	TrackingNumber     *string
	EstimatedDelivery  *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Items []OrderItem
}

// OrderItem is one product line of an order, owned by exactly one vendor.
// Product name, SKU, vendor and price are captured at order time and do not
// follow later product edits.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	VendorID    int64
	ProductName string
	ProductSKU  string
	Quantity    int
	Price       float64
	Discount    float64
	Tax         float64
	Total       float64
}
