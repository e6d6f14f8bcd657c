package order

import (
	"context"
	"strings"
	"time"

	"vesture-be/internal/cart"
	"vesture-be/internal/coupon"
	"vesture-be/internal/logger"
	"vesture-be/internal/metrics"
	"vesture-be/internal/pricing"

	"go.uber.org/zap"
)

// Publisher emits order events; nil means events are disabled.
type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
}

type Service interface {
	// Checkout turns the user's cart into an order: price the cart,
	// settle the coupon, persist the snapshot, clear the cart, emit the
	// created event. The coupon is consumed only after the order commits.
	Checkout(ctx context.Context, userID uint, params CheckoutParams) (*Order, error)

	ListForUser(ctx context.Context, userID uint, limit, offset int) ([]*Order, error)
	ListAll(ctx context.Context, opts ListOptions) ([]*Order, error)
	// GetDetail returns the order only to its owner or an admin.
	GetDetail(ctx context.Context, orderID string, userID uint, isAdmin bool) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error)
}

type service struct {
	repo      Repository
	cartSvc   cart.Service
	couponSvc coupon.Service
	publisher Publisher
}

func NewService(repo Repository, cartSvc cart.Service, couponSvc coupon.Service, publisher Publisher) Service {
	return &service{
		repo:      repo,
		cartSvc:   cartSvc,
		couponSvc: couponSvc,
		publisher: publisher,
	}
}

func validateAddress(a DeliveryAddress) error {
	if a.Name == "" || a.Phone == "" || a.AddressLine1 == "" ||
		a.City == "" || a.State == "" || a.Pincode == "" {
		return ErrIncompleteAddress
	}
	return nil
}

func (s *service) Checkout(ctx context.Context, userID uint, params CheckoutParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
	)

	// 1. Validate checkout input
	if params.PaymentMethod != PaymentPhonePe && params.PaymentMethod != PaymentCashOnDelivery {
		return nil, ErrInvalidPaymentMethod
	}
	if err := validateAddress(params.DeliveryAddress); err != nil {
		return nil, err
	}

	// 2. Load the cart; an empty cart cannot check out
	lines, err := s.cartSvc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, cart.ErrCartEmpty
	}

	subtotal := cart.Subtotal(lines)

	// 3. Settle the coupon against the live subtotal. Stale client-side
	// validation does not count; a rejection here fails the checkout.
	discount := 0.0
	couponCode := strings.ToUpper(strings.TrimSpace(params.CouponCode))
	if couponCode != "" {
		result, err := s.couponSvc.Validate(ctx, couponCode, subtotal)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, &CouponRejectedError{Message: result.Message}
		}
		discount = result.DiscountAmount
	}
	params.CouponCode = couponCode

	// 4. Assemble and persist the snapshot
	quote := pricing.NewQuote(subtotal, discount)
	o := Assemble(userID, lines, quote, params, time.Now())

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	// 5. Consume the coupon after the order committed
	if couponCode != "" {
		if err := s.couponSvc.Apply(ctx, couponCode); err != nil {
			// The order stands; the redemption shortfall is an
			// operational follow-up, not a customer failure.
			log.Warn("failed to consume coupon redemption",
				zap.String("code", couponCode), zap.Error(err))
		} else {
			metrics.CouponsApplied.Inc()
		}
	}

	// 6. Clear the cart; best effort
	if err := s.cartSvc.Clear(ctx, userID); err != nil {
		log.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	// 7. Emit the created event; best effort
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, o.ID, NewCreatedEvent(o)); err != nil {
			log.Warn("failed to publish order event", zap.Error(err))
		}
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.Float64("final_total", o.FinalTotal),
	)

	return &o, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]*Order, error) {
	return s.repo.List(ctx, ListOptions{UserID: &userID, Limit: limit, Offset: offset})
}

func (s *service) ListAll(ctx context.Context, opts ListOptions) ([]*Order, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) GetDetail(ctx context.Context, orderID string, userID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
