package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"vesture-be/internal/logger"

	"go.uber.org/zap"
)

// Repository persists order snapshots. Implementations: postgres and
// the file store fallback.
type Repository interface {
	Create(ctx context.Context, o Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, opts ListOptions) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)
}

var ErrOrderNotFound = fmt.Errorf("order not found")

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, user_id, subtotal, discount, delivery_fee, final_total,
	coupon_code, status, payment_method, payment_status, transaction_id,
	delivery_address, estimated_delivery, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	var addr []byte
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.Subtotal,
		&o.Discount,
		&o.DeliveryFee,
		&o.FinalTotal,
		&o.CouponCode,
		&o.Status,
		&o.PaymentMethod,
		&o.PaymentStatus,
		&o.TransactionID,
		&addr,
		&o.EstimatedDelivery,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addr, &o.DeliveryAddress); err != nil {
		return nil, fmt.Errorf("decode delivery address: %w", err)
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("order_id", o.ID),
	)

	addr, err := json.Marshal(o.DeliveryAddress)
	if err != nil {
		return fmt.Errorf("encode delivery address: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Order header
	_, err = tx.ExecContext(ctx, `
	INSERT INTO orders (
		id, user_id, subtotal, discount, delivery_fee, final_total,
		coupon_code, status, payment_method, payment_status, transaction_id,
		delivery_address, estimated_delivery, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		o.ID, o.UserID, o.Subtotal, o.Discount, o.DeliveryFee, o.FinalTotal,
		o.CouponCode, o.Status, o.PaymentMethod, o.PaymentStatus, o.TransactionID,
		addr, o.EstimatedDelivery, o.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	// 2. Line items
	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx, `
		INSERT INTO order_items (
			order_id, product_id, name, unit_price, original_price,
			image, size, color, quantity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			o.ID, it.ProductID, it.Name, it.UnitPrice, it.OriginalPrice,
			it.Image, it.Size, it.Color, it.Quantity,
		)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Info("order created", zap.Float64("final_total", o.FinalTotal))
	return nil
}

func (r *repository) loadItems(ctx context.Context, orderID string) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT product_id, name, unit_price, original_price, image, size, color, quantity
	FROM order_items WHERE order_id = $1 ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ProductID, &it.Name, &it.UnitPrice, &it.OriginalPrice,
			&it.Image, &it.Size, &it.Color, &it.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	o.Items, err = r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	where := []string{}
	args := []any{}

	if opts.UserID != nil {
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, *opts.UserID)
	}
	if opts.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *opts.Status)
	}
	if len(where) > 0 {
		query += " WHERE " + where[0]
		for _, w := range where[1:] {
			query += " AND " + w
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, opts.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range result {
		o.Items, err = r.loadItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
	UPDATE orders SET status = $1, updated_at = NOW()
	WHERE id = $2
	RETURNING `+orderColumns,
		status, orderID,
	))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	o.Items, err = r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o, nil
}
