package repository

import (
	"context"

	"github.com/shopperhq/shopper/internal/domain/model"
)

// ProductRepository exposes the catalog reads and stock adjustments the order
// core consumes. Catalog CRUD is owned by an external service.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	// AdjustQuantity applies delta atomically; a decrement below zero fails
	// with ErrInsufficientStock and leaves the row unchanged.
	AdjustQuantity(ctx context.Context, id int64, delta int) error
}

// AddressRepository resolves buyer addresses.
type AddressRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Address, error)
}

// UserRepository supplies buyer summaries for order responses.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// VendorRepository resolves the vendor profile behind a user account.
type VendorRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.Vendor, error)
}
