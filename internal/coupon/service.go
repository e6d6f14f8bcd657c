package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vesture-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines coupon validation, redemption and admin maintenance.
type Service interface {
	// Validate decides whether the code applies to a cart with the given
	// subtotal and computes the discount. It never mutates anything;
	// rejections come back as a Result with Valid=false.
	Validate(ctx context.Context, code string, subtotal float64) (Result, error)
	// Apply consumes one redemption for the code. Called exactly once per
	// accepted order, never for previews.
	Apply(ctx context.Context, code string) error

	List(ctx context.Context) ([]*Coupon, error)
	Create(ctx context.Context, input NewCouponInput) (*Coupon, error)
	Update(ctx context.Context, input UpdateCouponInput) (*Coupon, error)
	Deactivate(ctx context.Context, couponID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Validate(ctx context.Context, code string, subtotal float64) (Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Validate"),
		zap.Float64("subtotal", subtotal),
	)

	// 1. Normalize and look up; inactive coupons are treated as not found
	code = strings.ToUpper(strings.TrimSpace(code))

	c, err := s.repo.GetActiveByCode(ctx, code)
	if err != nil {
		log.Error("failed to look up coupon", zap.Error(err))
		return Result{}, err
	}
	if c == nil {
		return Result{Valid: false, Message: "Invalid coupon code"}, nil
	}

	// 2. Expiry
	if c.ExpiryDate != nil && c.ExpiryDate.Before(time.Now()) {
		return Result{Valid: false, Message: "Coupon has expired"}, nil
	}

	// 3. Minimum order amount
	if c.MinOrderAmount != nil && subtotal < *c.MinOrderAmount {
		return Result{
			Valid:   false,
			Message: fmt.Sprintf("Minimum order amount of ₹%.0f required", *c.MinOrderAmount),
		}, nil
	}

	// 4. Usage cap
	if c.MaxUsage != nil && c.UsedCount >= *c.MaxUsage {
		return Result{Valid: false, Message: "Coupon usage limit reached"}, nil
	}

	// 5. Compute discount
	discount := c.DiscountFor(subtotal)

	log.Info("coupon validated",
		zap.String("code", code),
		zap.Float64("discount", discount),
	)

	return Result{
		Valid:          true,
		Coupon:         c,
		DiscountAmount: discount,
		Message:        fmt.Sprintf("Discount of ₹%.2f applied", discount),
	}, nil
}

func (s *service) Apply(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	return s.repo.IncrementUsage(ctx, code)
}

func (s *service) List(ctx context.Context) ([]*Coupon, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, input NewCouponInput) (*Coupon, error) {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))

	if input.Code == "" || input.DiscountValue <= 0 {
		return nil, ErrInvalidInput
	}
	if input.DiscountType != DiscountPercentage && input.DiscountType != DiscountFixed {
		return nil, ErrInvalidInput
	}
	if input.DiscountType == DiscountPercentage && input.DiscountValue > 100 {
		return nil, ErrInvalidInput
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, input UpdateCouponInput) (*Coupon, error) {
	if input.CouponID == "" {
		return nil, ErrInvalidInput
	}
	if input.DiscountValue != nil && *input.DiscountValue <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Update(ctx, input)
}

func (s *service) Deactivate(ctx context.Context, couponID string) error {
	if couponID == "" {
		return ErrInvalidInput
	}
	return s.repo.Deactivate(ctx, couponID)
}
