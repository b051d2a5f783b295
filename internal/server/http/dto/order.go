package dto

import "time"

// CartItemRequest is one requested cart line at checkout.
type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest describes the checkout payload.
type CreateOrderRequest struct {
	ShippingAddressID int64             `json:"shippingAddressId"`
	BillingAddressID  int64             `json:"billingAddressId"`
	PaymentMethod     string            `json:"paymentMethod"`
	CouponCode        string            `json:"couponCode"`
	Notes             string            `json:"notes"`
	CartItems         []CartItemRequest `json:"cartItems"`
}

// CancelOrderRequest carries the buyer's cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// UpdateOrderStatusRequest describes a status transition payload.
type UpdateOrderStatusRequest struct {
	Status            string     `json:"status"`
	TrackingNumber    *string    `json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// OrderItemResponse is one order line in a response.
type OrderItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	VendorID    int64   `json:"vendorId"`
	ProductName string  `json:"productName"`
	ProductSKU  string  `json:"productSku"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// AddressResponse is an embedded address summary.
type AddressResponse struct {
	ID           int64  `json:"id"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
	IsDefault    bool   `json:"isDefault"`
}

// UserResponse is an embedded buyer summary.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// OrderResponse is the full order representation.
type OrderResponse struct {
	ID                 int64               `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	UserID             int64               `json:"userId"`
	Status             string              `json:"status"`
	Subtotal           float64             `json:"subTotal"`
	TaxAmount          float64             `json:"taxAmount"`
	ShippingAmount     float64             `json:"shippingAmount"`
	DiscountAmount     float64             `json:"discountAmount"`
	TotalAmount        float64             `json:"totalAmount"`
	PaymentMethod      string              `json:"paymentMethod"`
	PaymentStatus      string              `json:"paymentStatus"`
	Notes              string              `json:"notes,omitempty"`
	TrackingNumber     *string             `json:"trackingNumber,omitempty"`
	EstimatedDelivery  *time.Time          `json:"estimatedDelivery,omitempty"`
	DeliveredAt        *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time          `json:"cancelledAt,omitempty"`
	CancellationReason *string             `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	User               *UserResponse       `json:"user,omitempty"`
	ShippingAddress    *AddressResponse    `json:"shippingAddress,omitempty"`
	BillingAddress     *AddressResponse    `json:"billingAddress,omitempty"`
	Items              []OrderItemResponse `json:"items"`
}

// ErrorResponse is the machine-readable error envelope.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
