package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/domain/repository"
	"github.com/shopperhq/shopper/internal/pricing"
	"github.com/shopperhq/shopper/internal/vendorview"
)

const estimatedDeliveryDays = 5

// Actor identifies who requests a state-changing operation.
type Actor struct {
	UserID int64
	Role   model.Role
}

// CartLine is one requested cart position at checkout.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries the checkout request.
type CreateOrderInput struct {
	ShippingAddressID int64
	BillingAddressID  int64
	PaymentMethod     string
	CouponCode        string
	Notes             string
	Lines             []CartLine
}

// StatusUpdateInput carries a status transition request.
type StatusUpdateInput struct {
	Status            string
	TrackingNumber    *string
	EstimatedDelivery *time.Time
}

// OrderDetails is an order together with the references embedded into responses.
type OrderDetails struct {
	Order           model.Order
	ShippingAddress *model.Address
	BillingAddress  *model.Address
	Buyer           *model.User
}

// OrderUseCase orchestrates order creation, cancellation and status updates.
// It is the only component that writes Order.Status.
type OrderUseCase struct {
	orders        repository.OrderRepository
	products      repository.ProductRepository
	addresses     repository.AddressRepository
	users         repository.UserRepository
	vendors       repository.VendorRepository
	notifications repository.NotificationRepository
	engine        pricing.Engine
	discounts     DiscountPolicy
	logger        *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	repos repository.Factory,
	engine pricing.Engine,
	discounts DiscountPolicy,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:        repos.Orders(),
		products:      repos.Products(),
		addresses:     repos.Addresses(),
		users:         repos.Users(),
		vendors:       repos.Vendors(),
		notifications: repos.Notifications(),
		engine:        engine,
		discounts:     discounts,
		logger:        logger,
	}
}

// Create builds an order from the cart, reserving stock, pricing the lines and
// persisting order, items and stock adjustments as one transaction.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, input CreateOrderInput) (*OrderDetails, error) {
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("%w: empty cart", domainErrors.ErrInvalidQuantity)
	}
	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d", domainErrors.ErrInvalidQuantity, line.ProductID)
		}
	}

	method := model.PaymentMethodCashOnDelivery
	if input.PaymentMethod != "" {
		parsed, ok := model.ParsePaymentMethod(input.PaymentMethod)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidPayment, input.PaymentMethod)
		}
		method = parsed
	}

	shipping, err := u.ownedAddress(ctx, input.ShippingAddressID, userID)
	if err != nil {
		return nil, err
	}
	billing, err := u.ownedAddress(ctx, input.BillingAddressID, userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(input.Lines))
	lines := make([]pricing.Line, 0, len(input.Lines))
	for _, line := range input.Lines {
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %d", domainErrors.ErrProductUnavailable, line.ProductID)
			}
			return nil, err
		}
		if !product.IsActive {
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrProductUnavailable, product.Name)
		}

		items = append(items, model.OrderItem{
			ProductID:   product.ID,
			VendorID:    product.VendorID,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			Quantity:    line.Quantity,
			Price:       product.Price,
			Total:       pricing.LineTotal(product.Price, line.Quantity, 0, 0),
		})
		lines = append(lines, pricing.Line{UnitPrice: product.Price, Quantity: line.Quantity})
	}

	var discount float64
	if input.CouponCode != "" {
		discount, err = u.discounts.Discount(ctx, input.CouponCode, subtotal(lines))
		if err != nil {
			return nil, err
		}
	}
	quote := u.engine.Quote(lines, discount)

	estimated := time.Now().UTC().Add(estimatedDeliveryDays * 24 * time.Hour)
	order := &model.Order{
		UserID:            userID,
		Status:            model.OrderStatusPending,
		Subtotal:          quote.Subtotal,
		TaxAmount:         quote.Tax,
		ShippingAmount:    quote.Shipping,
		DiscountAmount:    quote.Discount,
		TotalAmount:       quote.Total,
		PaymentMethod:     method,
		PaymentStatus:     model.PaymentStatusPending,
		Notes:             input.Notes,
		ShippingAddressID: input.ShippingAddressID,
		BillingAddressID:  input.BillingAddressID,
		EstimatedDelivery: &estimated,
		Items:             items,
	}

	created, err := u.persistWithFreshNumber(ctx, order)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, created.UserID, created.ID, model.NotificationOrderPlaced,
		"Order placed", fmt.Sprintf("Your order %s has been placed.", created.Number))

	buyer := u.buyerSummary(ctx, userID)
	return &OrderDetails{Order: *created, ShippingAddress: shipping, BillingAddress: billing, Buyer: buyer}, nil
}

// persistWithFreshNumber retries exactly once with a regenerated order number
// when the generated one collides with an existing order.
func (u *OrderUseCase) persistWithFreshNumber(ctx context.Context, order *model.Order) (*model.Order, error) {
	order.Number = generateOrderNumber()
	created, err := u.orders.Create(ctx, order)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, domainErrors.ErrOrderNumberTaken) {
		return nil, err
	}

	order.Number = generateOrderNumber()
	created, err = u.orders.Create(ctx, order)
	if err != nil {
		if errors.Is(err, domainErrors.ErrOrderNumberTaken) {
			return nil, fmt.Errorf("%w: order number collision", domainErrors.ErrConflict)
		}
		return nil, err
	}
	return created, nil
}

// OrderByID returns the order with embedded references. Only the buyer or an
// admin may read it.
func (u *OrderUseCase) OrderByID(ctx context.Context, orderID int64, actor Actor) (*OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.UserID && actor.Role != model.RoleAdmin {
		return nil, fmt.Errorf("%w: not your order", domainErrors.ErrUnauthorized)
	}
	return u.details(ctx, order), nil
}

// OrderByNumber returns the order with the given human-readable number.
func (u *OrderUseCase) OrderByNumber(ctx context.Context, number string) (*OrderDetails, error) {
	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return u.details(ctx, order), nil
}

// OrdersForUser lists the buyer's orders, newest first.
func (u *OrderUseCase) OrdersForUser(ctx context.Context, userID int64) ([]OrderDetails, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	buyer := u.buyerSummary(ctx, userID)
	result := make([]OrderDetails, 0, len(orders))
	for _, order := range orders {
		details := u.details(ctx, &order)
		details.Buyer = buyer
		result = append(result, *details)
	}
	return result, nil
}

// Cancel cancels the buyer's own order while it is still cancellable,
// restoring the reserved stock exactly once.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, requesterID int64, reason string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != requesterID {
		return fmt.Errorf("%w: not your order", domainErrors.ErrUnauthorized)
	}
	if !model.IsCancellable(order.Status) {
		return fmt.Errorf("%w: order in status %s cannot be cancelled", domainErrors.ErrInvalidTransition, order.Status)
	}

	if err := u.orders.Cancel(ctx, orderID, order.Status, reason); err != nil {
		return err
	}

	u.notify(ctx, order.UserID, order.ID, model.NotificationOrderCancelled,
		"Order cancelled", fmt.Sprintf("Your order %s has been cancelled.", order.Number))
	return nil
}

// UpdateStatus transitions the order along the status graph. Vendors must own
// at least one item of the order. Transitions to Cancelled go through the
// cancellation routine so reserved stock is always restored, regardless of
// which role initiated them.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, input StatusUpdateInput, actor Actor) error {
	newStatus, ok := model.ParseOrderStatus(input.Status)
	if !ok {
		return fmt.Errorf("%w: unknown status %q", domainErrors.ErrInvalidTransition, input.Status)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	switch actor.Role {
	case model.RoleAdmin:
	case model.RoleVendor:
		vendor, err := u.vendors.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return fmt.Errorf("%w: vendor profile not found", domainErrors.ErrUnauthorized)
			}
			return err
		}
		if !vendorview.OwnsOrder(order, vendor.ID) {
			return fmt.Errorf("%w: order has no items of this vendor", domainErrors.ErrUnauthorized)
		}
	default:
		return fmt.Errorf("%w: role %s may not update order status", domainErrors.ErrUnauthorized, actor.Role)
	}

	if !model.CanTransition(order.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", domainErrors.ErrInvalidTransition, order.Status, newStatus)
	}

	if newStatus == model.OrderStatusCancelled {
		reason := "cancelled by administrator"
		if actor.Role == model.RoleVendor {
			reason = "declined by vendor"
		}
		if err := u.orders.Cancel(ctx, orderID, order.Status, reason); err != nil {
			return err
		}
	} else {
		var tracking *string
		var estimated *time.Time
		if newStatus == model.OrderStatusShipped || newStatus == model.OrderStatusDelivered {
			tracking = input.TrackingNumber
			estimated = input.EstimatedDelivery
		}
		if err := u.orders.UpdateStatus(ctx, orderID, order.Status, newStatus, tracking, estimated); err != nil {
			return err
		}
	}

	u.notify(ctx, order.UserID, order.ID, model.NotificationOrderStatus,
		"Order status updated", fmt.Sprintf("Your order %s is now %s.", order.Number, newStatus))
	return nil
}

func (u *OrderUseCase) ownedAddress(ctx context.Context, addressID, userID int64) (*model.Address, error) {
	address, err := u.addresses.GetByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: address %d", domainErrors.ErrInvalidAddress, addressID)
		}
		return nil, err
	}
	if address.UserID != userID {
		return nil, fmt.Errorf("%w: address %d", domainErrors.ErrInvalidAddress, addressID)
	}
	return address, nil
}

// details embeds addresses into the order response; lookups are best-effort
// reads of data owned by external collaborators.
func (u *OrderUseCase) details(ctx context.Context, order *model.Order) *OrderDetails {
	details := &OrderDetails{Order: *order}
	if address, err := u.addresses.GetByID(ctx, order.ShippingAddressID); err == nil {
		details.ShippingAddress = address
	}
	if address, err := u.addresses.GetByID(ctx, order.BillingAddressID); err == nil {
		details.BillingAddress = address
	}
	details.Buyer = u.buyerSummary(ctx, order.UserID)
	return details
}

func (u *OrderUseCase) buyerSummary(ctx context.Context, userID int64) *model.User {
	buyer, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return buyer
}

// notify records a buyer notification; failures are logged, never propagated.
func (u *OrderUseCase) notify(ctx context.Context, userID, orderID int64, kind model.NotificationType, title, message string) {
	err := u.notifications.Create(ctx, &model.Notification{
		UserID:  userID,
		OrderID: orderID,
		Type:    kind,
		Title:   title,
		Message: message,
	})
	if err != nil {
		u.logger.Warn("record notification failed",
			slog.Int64("order_id", orderID), slog.String("error", err.Error()))
	}
}

func subtotal(lines []pricing.Line) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	return sum
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD%s%d", time.Now().UTC().Format("20060102150405"), 1000+rand.Intn(9000))
}
