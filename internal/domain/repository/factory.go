package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Products() ProductRepository
	Addresses() AddressRepository
	Users() UserRepository
	Vendors() VendorRepository
	Notifications() NotificationRepository
}
