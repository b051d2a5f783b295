package model

// OrderStatus describes the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusRefunded   OrderStatus = "Refunded"
)

// allowedTransitions is the fixed graph of legal status changes.
// Cancelled and Refunded have no outgoing edges.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:    {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed:  {OrderStatusProcessing: true, OrderStatusCancelled: true},
	OrderStatusProcessing: {OrderStatusShipped: true, OrderStatusCancelled: true},
	OrderStatusShipped:    {OrderStatusDelivered: true},
	OrderStatusDelivered:  {OrderStatusRefunded: true},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// CanTransition reports whether a direct status change from -> to is legal.
// Unknown or empty statuses never transition.
func CanTransition(from, to OrderStatus) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// IsCancellable reports whether an order in the given status may still be cancelled.
func IsCancellable(status OrderStatus) bool {
	return status == OrderStatusPending || status == OrderStatusConfirmed || status == OrderStatusProcessing
}

// IsTerminal reports whether the status ends the fulfilment flow. Delivered is
// terminal in this sense (no longer cancellable or shippable) even though the
// transition table still allows Delivered -> Refunded.
func IsTerminal(status OrderStatus) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled || status == OrderStatusRefunded
}

// ParseOrderStatus validates an inbound status string.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", false
	}
	return status, true
}

// PaymentStatus describes the payment lifecycle state.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// PaymentMethod describes how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "CashOnDelivery"
	PaymentMethodCreditCard     PaymentMethod = "CreditCard"
	PaymentMethodDebitCard      PaymentMethod = "DebitCard"
	PaymentMethodUPI            PaymentMethod = "UPI"
	PaymentMethodNetBanking     PaymentMethod = "NetBanking"
)

var paymentMethods = map[PaymentMethod]bool{
	PaymentMethodCashOnDelivery: true,
	PaymentMethodCreditCard:     true,
	PaymentMethodDebitCard:      true,
	PaymentMethodUPI:            true,
	PaymentMethodNetBanking:     true,
}

// ParsePaymentMethod validates an inbound payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	method := PaymentMethod(s)
	return method, paymentMethods[method]
}

// Role describes the caller's access level.
type Role string

const (
	RoleCustomer Role = "Customer"
	RoleVendor   Role = "Vendor"
	RoleAdmin    Role = "Admin"
)

// ParseRole validates an inbound role string.
func ParseRole(s string) (Role, bool) {
	switch role := Role(s); role {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}
