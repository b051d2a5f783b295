package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
)

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, vendor_id, name, sku, price, quantity, is_active, created_at, updated_at
        FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.VendorID, &p.Name, &p.SKU, &p.Price, &p.Quantity, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// AdjustQuantity applies delta atomically; a decrement never drives the
// quantity below zero.
func (r *productRepository) AdjustQuantity(ctx context.Context, id int64, delta int) error {
	const update = `UPDATE products SET quantity = quantity + $2, updated_at = NOW()
        WHERE id = $1 AND quantity + $2 >= 0`
	tag, err := r.storage.pool.Exec(ctx, update, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.storage.pool.QueryRow(ctx, `SELECT TRUE FROM products WHERE id=$1`, id).Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrInsufficientStock
}

// --- AddressRepository implementation ---

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	const query = `SELECT id, user_id, address_line1, address_line2, city, state, country, postal_code, is_default
        FROM addresses WHERE id=$1`
	var a model.Address
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.AddressLine1, &a.AddressLine2, &a.City, &a.State, &a.Country, &a.PostalCode, &a.IsDefault)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, first_name, last_name, phone, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Phone, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- VendorRepository implementation ---

func (r *vendorRepository) GetByUserID(ctx context.Context, userID int64) (*model.Vendor, error) {
	const query = `SELECT id, user_id, store_name, created_at FROM vendors WHERE user_id=$1`
	var v model.Vendor
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&v.ID, &v.UserID, &v.StoreName, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) error {
	const insert = `INSERT INTO notifications (user_id, order_id, type, title, message)
        VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, insert, n.UserID, n.OrderID, n.Type, n.Title, n.Message).
		Scan(&n.ID, &n.CreatedAt)
}

// SelectBatchForDelivery claims undelivered notifications with a skip-locked
// scan so concurrent dispatchers never pick the same rows.
func (r *notificationRepository) SelectBatchForDelivery(ctx context.Context, limit int) ([]model.Notification, error) {
	const selectQuery = `SELECT id, user_id, order_id, type, title, message, delivered_at, created_at
        FROM notifications
        WHERE delivered_at IS NULL
        ORDER BY created_at
        LIMIT $1
        FOR UPDATE SKIP LOCKED`

	var notifications []model.Notification
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n model.Notification
			if err := rows.Scan(&n.ID, &n.UserID, &n.OrderID, &n.Type, &n.Title, &n.Message, &n.DeliveredAt, &n.CreatedAt); err != nil {
				return err
			}
			notifications = append(notifications, n)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range notifications {
			if _, err := tx.Exec(ctx, `UPDATE notifications SET delivered_at=NOW() WHERE id=$1`, notifications[i].ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
