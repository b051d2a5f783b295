package model

import "time"

// Product is the storefront catalog record. Only the fields consumed by the
// order core are modeled; catalog CRUD lives outside this service.
type Product struct {
	ID        int64
	VendorID  int64
	Name      string
	SKU       string
	Price     float64
	Quantity  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address is a buyer's shipping or billing address.
type Address struct {
	ID           int64
	UserID       int64
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	PostalCode   string
	IsDefault    bool
}

// Vendor is a seller profile attached to a user account.
type Vendor struct {
	ID        int64
	UserID    int64
	StoreName string
	CreatedAt time.Time
}

// User carries the buyer summary embedded into order responses.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      Role
	CreatedAt time.Time
}
