package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/shopperhq/shopper/internal/domain/errors"
	"github.com/shopperhq/shopper/internal/domain/model"
)

const orderColumns = `id, user_id, number, status, subtotal, tax_amount, shipping_amount,
       discount_amount, total_amount, payment_method, payment_status, notes,
       shipping_address_id, billing_address_id, tracking_number, estimated_delivery,
       delivered_at, cancelled_at, cancellation_reason, created_at, updated_at`

const itemColumns = `id, order_id, product_id, vendor_id, product_name, product_sku,
       quantity, price, discount, tax, total`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Create persists the order, its items and the stock decrements as a single
// transaction. Stock is reserved with a guarded conditional decrement, one
// item at a time in the submitted cart order; any failure rolls back every
// earlier reservation.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, item := range order.Items {
			if err := reserveStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		const insertOrder = `INSERT INTO orders (user_id, number, status, subtotal, tax_amount,
                shipping_amount, discount_amount, total_amount, payment_method, payment_status,
                notes, shipping_address_id, billing_address_id, estimated_delivery)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
            RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.UserID, order.Number, order.Status, order.Subtotal, order.TaxAmount,
			order.ShippingAmount, order.DiscountAmount, order.TotalAmount, order.PaymentMethod,
			order.PaymentStatus, order.Notes, order.ShippingAddressID, order.BillingAddressID,
			order.EstimatedDelivery,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrOrderNumberTaken
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, vendor_id,
                product_name, product_sku, quantity, price, discount, tax, total)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
            RETURNING id`
		created.Items = make([]model.OrderItem, len(order.Items))
		for i, item := range order.Items {
			item.OrderID = created.ID
			err := tx.QueryRow(ctx, insertItem,
				item.OrderID, item.ProductID, item.VendorID, item.ProductName, item.ProductSKU,
				item.Quantity, item.Price, item.Discount, item.Tax, item.Total,
			).Scan(&item.ID)
			if err != nil {
				return err
			}
			created.Items[i] = item
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// reserveStock decrements available quantity only when enough stock exists and
// the product is active, so concurrent checkouts can never oversell.
func reserveStock(ctx context.Context, tx pgx.Tx, productID int64, quantity int) error {
	const reserve = `UPDATE products
        SET quantity = quantity - $2, updated_at = NOW()
        WHERE id = $1 AND is_active AND quantity >= $2`
	tag, err := tx.Exec(ctx, reserve, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var name string
	var active bool
	err = tx.QueryRow(ctx, `SELECT name, is_active FROM products WHERE id=$1`, productID).Scan(&name, &active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrProductUnavailable
		}
		return err
	}
	if !active {
		return domainErrors.ErrProductUnavailable
	}
	return domainErrors.ErrInsufficientStock
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE number=$1`, number)
}

func (r *orderRepository) getOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	items, err := loadItems(ctx, r.storage.pool, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) ListByVendor(ctx context.Context, vendorID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
        WHERE id IN (SELECT DISTINCT order_id FROM order_items WHERE vendor_id=$1)
        ORDER BY created_at DESC`
	return r.list(ctx, query, vendorID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	var ids []int64
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []model.Order{}, nil
	}

	items, err := loadItems(ctx, r.storage.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

// UpdateStatus applies the transition guarded by the current status so that
// concurrent writers are serialized per order.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, tracking *string, estimatedDelivery *time.Time) error {
	const update = `UPDATE orders
        SET status = $3,
            tracking_number = COALESCE($4, tracking_number),
            estimated_delivery = COALESCE($5, estimated_delivery),
            delivered_at = CASE WHEN $3 = 'Delivered' THEN NOW() ELSE delivered_at END,
            updated_at = NOW()
        WHERE id = $1 AND status = $2`
	tag, err := r.storage.pool.Exec(ctx, update, orderID, from, to, tracking, estimatedDelivery)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrConflict
	}
	return nil
}

// Cancel flips the status and restores every item quantity inside one
// transaction. The status guard makes a second cancellation fail with
// ErrConflict instead of double-restoring stock.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64, from model.OrderStatus, reason string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const cancel = `UPDATE orders
            SET status = 'Cancelled', cancelled_at = NOW(), cancellation_reason = $3, updated_at = NOW()
            WHERE id = $1 AND status = $2`
		tag, err := tx.Exec(ctx, cancel, orderID, from, reason)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrConflict
		}

		rows, err := tx.Query(ctx, `SELECT product_id, quantity FROM order_items WHERE order_id=$1`, orderID)
		if err != nil {
			return err
		}
		defer rows.Close()

		type restore struct {
			productID int64
			quantity  int
		}
		var restores []restore
		for rows.Next() {
			var r restore
			if err := rows.Scan(&r.productID, &r.quantity); err != nil {
				return err
			}
			restores = append(restores, r)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for _, item := range restores {
			const release = `UPDATE products SET quantity = quantity + $2, updated_at = NOW() WHERE id = $1`
			if _, err := tx.Exec(ctx, release, item.productID, item.quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.Number, &o.Status, &o.Subtotal, &o.TaxAmount, &o.ShippingAmount,
		&o.DiscountAmount, &o.TotalAmount, &o.PaymentMethod, &o.PaymentStatus, &o.Notes,
		&o.ShippingAddressID, &o.BillingAddressID, &o.TrackingNumber, &o.EstimatedDelivery,
		&o.DeliveredAt, &o.CancelledAt, &o.CancellationReason, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func loadItems(ctx context.Context, q querier, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	const query = `SELECT ` + itemColumns + ` FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]model.OrderItem)
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.VendorID,
			&item.ProductName, &item.ProductSKU, &item.Quantity, &item.Price,
			&item.Discount, &item.Tax, &item.Total)
		if err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
