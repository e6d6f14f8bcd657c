package coupon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"vesture-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetActiveByCode(ctx context.Context, code string) (*Coupon, error)
	// IncrementUsage consumes one redemption. The increment is conditional
	// on used_count staying under max_usage, so two concurrent checkouts
	// cannot over-redeem the coupon.
	IncrementUsage(ctx context.Context, code string) error
	List(ctx context.Context) ([]*Coupon, error)
	Create(ctx context.Context, input NewCouponInput) (*Coupon, error)
	Update(ctx context.Context, input UpdateCouponInput) (*Coupon, error)
	Deactivate(ctx context.Context, couponID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const couponColumns = `id, code, name, description, discount_type, discount_value,
	max_discount, min_order_amount, max_usage, used_count, expiry_date,
	is_active, created_at, updated_at`

func scanCoupon(row interface{ Scan(...any) error }) (*Coupon, error) {
	var c Coupon
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Name,
		&c.Description,
		&c.DiscountType,
		&c.DiscountValue,
		&c.MaxDiscount,
		&c.MinOrderAmount,
		&c.MaxUsage,
		&c.UsedCount,
		&c.ExpiryDate,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetActiveByCode(ctx context.Context, code string) (*Coupon, error) {
	c, err := scanCoupon(r.db.QueryRowContext(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1 AND is_active = TRUE`,
		code,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

func (r *repository) IncrementUsage(ctx context.Context, code string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "IncrementUsage"),
		zap.String("code", code),
	)

	res, err := r.db.ExecContext(ctx, `
	UPDATE coupons
	SET used_count = used_count + 1, updated_at = NOW()
	WHERE code = $1
	  AND is_active = TRUE
	  AND (max_usage IS NULL OR used_count < max_usage)
	`, code)
	if err != nil {
		log.Error("failed to increment coupon usage", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUsageExceeded
	}

	log.Info("coupon usage incremented")
	return nil
}

func (r *repository) List(ctx context.Context) ([]*Coupon, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *repository) Create(ctx context.Context, input NewCouponInput) (*Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("code", input.Code),
	)

	c, err := scanCoupon(r.db.QueryRowContext(ctx, `
	INSERT INTO coupons (
		id, code, name, description, discount_type, discount_value,
		max_discount, min_order_amount, max_usage, expiry_date, is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING `+couponColumns,
		uuid.New().String(),
		input.Code,
		input.Name,
		input.Description,
		input.DiscountType,
		input.DiscountValue,
		input.MaxDiscount,
		input.MinOrderAmount,
		input.MaxUsage,
		input.ExpiryDate,
		input.IsActive,
	))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrCodeExists
		}
		log.Error("failed to create coupon", zap.Error(err))
		return nil, err
	}

	log.Info("coupon created", zap.String("coupon_id", c.ID))
	return c, nil
}

func (r *repository) Update(ctx context.Context, input UpdateCouponInput) (*Coupon, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{}

	addSet := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, v)
	}

	if input.Name != nil {
		addSet("name", *input.Name)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.DiscountType != nil {
		addSet("discount_type", *input.DiscountType)
	}
	if input.DiscountValue != nil {
		addSet("discount_value", *input.DiscountValue)
	}
	if input.MaxDiscount != nil {
		addSet("max_discount", *input.MaxDiscount)
	}
	if input.MinOrderAmount != nil {
		addSet("min_order_amount", *input.MinOrderAmount)
	}
	if input.MaxUsage != nil {
		addSet("max_usage", *input.MaxUsage)
	}
	if input.ExpiryDate != nil {
		addSet("expiry_date", *input.ExpiryDate)
	}
	if input.IsActive != nil {
		addSet("is_active", *input.IsActive)
	}

	query := `UPDATE coupons SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + fmt.Sprint(len(args)+1) +
		` RETURNING ` + couponColumns
	args = append(args, input.CouponID)

	c, err := scanCoupon(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCouponNotFound
	}
	return c, err
}

func (r *repository) Deactivate(ctx context.Context, couponID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coupons SET is_active = FALSE, updated_at = NOW() WHERE id = $1`,
		couponID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponNotFound
	}
	return nil
}
