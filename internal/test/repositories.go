package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
	"github.com/shopperhq/shopper/internal/domain/repository"
)

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID           int64
	From              model.OrderStatus
	To                model.OrderStatus
	Tracking          *string
	EstimatedDelivery *time.Time
}

// CancelCall stores information about Cancel invocations.
type CancelCall struct {
	OrderID int64
	From    model.OrderStatus
	Reason  string
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	GetByNumberFn  func(context.Context, string) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListByVendorFn func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus, model.OrderStatus, *string, *time.Time) error
	CancelFn       func(context.Context, int64, model.OrderStatus, string) error

	Orders      []model.Order
	Created     []model.Order
	UpdateCalls []StatusUpdateCall
	CancelCalls []CancelCall
	NextID      int64
}

// Create tracks invocations and assigns sequential identifiers.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.NextID == 0 {
		s.NextID = 1
	}
	created := *order
	created.ID = s.NextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.NextID++
	s.Created = append(s.Created, created)
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns the matching stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByNumber returns the matching stored order or not found.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	for _, o := range s.Orders {
		if o.Number == number {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders for the buyer.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// ListByVendor returns stored orders with at least one item of the vendor.
func (s *OrderRepositoryStub) ListByVendor(ctx context.Context, vendorID int64) ([]model.Order, error) {
	if s.ListByVendorFn != nil {
		return s.ListByVendorFn(ctx, vendorID)
	}
	var orders []model.Order
	for _, o := range s.Orders {
		for _, item := range o.Items {
			if item.VendorID == vendorID {
				orders = append(orders, o)
				break
			}
		}
	}
	return orders, nil
}

// UpdateStatus records the transition and applies it to the stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, tracking *string, estimatedDelivery *time.Time) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to, tracking, estimatedDelivery)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{
		OrderID: orderID, From: from, To: to, Tracking: tracking, EstimatedDelivery: estimatedDelivery,
	})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			if s.Orders[i].Status != from {
				return domainErrors.ErrConflict
			}
			s.Orders[i].Status = to
			return nil
		}
	}
	return domainErrors.ErrConflict
}

// Cancel records the cancellation and applies it to the stored order.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64, from model.OrderStatus, reason string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID, from, reason)
	}
	s.CancelCalls = append(s.CancelCalls, CancelCall{OrderID: orderID, From: from, Reason: reason})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			if s.Orders[i].Status != from {
				return domainErrors.ErrConflict
			}
			s.Orders[i].Status = model.OrderStatusCancelled
			return nil
		}
	}
	return domainErrors.ErrConflict
}

// AdjustCall stores information about AdjustQuantity invocations.
type AdjustCall struct {
	ProductID int64
	Delta     int
}

// ProductRepositoryStub serves catalog products from memory.
type ProductRepositoryStub struct {
	Products    map[int64]*model.Product
	AdjustFn    func(context.Context, int64, int) error
	AdjustCalls []AdjustCall
	Err         error
}

// GetByID fetches a product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AdjustQuantity records the adjustment and applies it in memory.
func (s *ProductRepositoryStub) AdjustQuantity(ctx context.Context, id int64, delta int) error {
	if s.AdjustFn != nil {
		return s.AdjustFn(ctx, id, delta)
	}
	s.AdjustCalls = append(s.AdjustCalls, AdjustCall{ProductID: id, Delta: delta})
	product, ok := s.Products[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if product.Quantity+delta < 0 {
		return domainErrors.ErrInsufficientStock
	}
	product.Quantity += delta
	return nil
}

// AddressRepositoryStub serves buyer addresses from memory.
type AddressRepositoryStub struct {
	Addresses map[int64]*model.Address
	Err       error
}

// GetByID fetches an address or returns not found.
func (s *AddressRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if address, ok := s.Addresses[id]; ok {
		return address, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UserRepositoryStub serves users from memory.
type UserRepositoryStub struct {
	ByID map[int64]*model.User
	Err  error
}

// GetByID fetches a user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// VendorRepositoryStub resolves vendor profiles from memory.
type VendorRepositoryStub struct {
	ByUserID map[int64]*model.Vendor
	Err      error
}

// GetByUserID fetches the vendor profile behind a user account.
func (s *VendorRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Vendor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if vendor, ok := s.ByUserID[userID]; ok {
		return vendor, nil
	}
	return nil, domainErrors.ErrNotFound
}

// NotificationRepositoryStub records created notifications and serves pending batches.
type NotificationRepositoryStub struct {
	CreateFn func(context.Context, *model.Notification) error
	BatchFn  func(context.Context, int) ([]model.Notification, error)

	mu      sync.Mutex
	Records []model.Notification
	Pending []model.Notification
	Err     error
}

// Create stores the notification.
func (s *NotificationRepositoryStub) Create(ctx context.Context, notification *model.Notification) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, notification)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	notification.ID = int64(len(s.Records) + 1)
	notification.CreatedAt = time.Now()
	s.Records = append(s.Records, *notification)
	return nil
}

// SelectBatchForDelivery drains up to limit pending notifications.
func (s *NotificationRepositoryStub) SelectBatchForDelivery(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.Pending) {
		limit = len(s.Pending)
	}
	batch := s.Pending[:limit]
	s.Pending = s.Pending[limit:]
	return batch, nil
}

// Recorded returns a copy of the stored notifications.
func (s *NotificationRepositoryStub) Recorded() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.Records...)
}

// FactoryStub bundles repository stubs behind the factory contract.
type FactoryStub struct {
	OrderRepo        *OrderRepositoryStub
	ProductRepo      *ProductRepositoryStub
	AddressRepo      *AddressRepositoryStub
	UserRepo         *UserRepositoryStub
	VendorRepo       *VendorRepositoryStub
	NotificationRepo *NotificationRepositoryStub
}

// NewFactoryStub constructs a factory with empty initialized stubs.
func NewFactoryStub() *FactoryStub {
	return &FactoryStub{
		OrderRepo:        &OrderRepositoryStub{},
		ProductRepo:      &ProductRepositoryStub{Products: make(map[int64]*model.Product)},
		AddressRepo:      &AddressRepositoryStub{Addresses: make(map[int64]*model.Address)},
		UserRepo:         &UserRepositoryStub{ByID: make(map[int64]*model.User)},
		VendorRepo:       &VendorRepositoryStub{ByUserID: make(map[int64]*model.Vendor)},
		NotificationRepo: &NotificationRepositoryStub{},
	}
}

func (f *FactoryStub) Orders() repository.OrderRepository               { return f.OrderRepo }
func (f *FactoryStub) Products() repository.ProductRepository           { return f.ProductRepo }
func (f *FactoryStub) Addresses() repository.AddressRepository          { return f.AddressRepo }
func (f *FactoryStub) Users() repository.UserRepository                 { return f.UserRepo }
func (f *FactoryStub) Vendors() repository.VendorRepository             { return f.VendorRepo }
func (f *FactoryStub) Notifications() repository.NotificationRepository { return f.NotificationRepo }

var _ repository.Factory = (*FactoryStub)(nil)
