package coupon

import (
	"context"
	"time"

	"vesture-be/internal/storage"

	"github.com/google/uuid"
)

type fileRepository struct {
	store *storage.FileStore
}

// NewFileRepository returns the flat-file coupon repository used when
// postgres is unreachable at startup. The store lock serializes the
// usage increment, so the max-usage guard holds within one process.
func NewFileRepository(dir string) (Repository, error) {
	fs, err := storage.NewFileStore(dir, "coupons")
	if err != nil {
		return nil, err
	}
	return &fileRepository{store: fs}, nil
}

type couponDoc []*Coupon

func (r *fileRepository) GetActiveByCode(_ context.Context, code string) (*Coupon, error) {
	doc := couponDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}
	for _, c := range doc {
		if c.Code == code && c.IsActive {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fileRepository) IncrementUsage(_ context.Context, code string) error {
	doc := couponDoc{}
	return r.store.Update(&doc, func() error {
		for _, c := range doc {
			if c.Code != code || !c.IsActive {
				continue
			}
			if c.MaxUsage != nil && c.UsedCount >= *c.MaxUsage {
				return ErrUsageExceeded
			}
			c.UsedCount++
			now := time.Now()
			c.UpdatedAt = &now
			return nil
		}
		return ErrUsageExceeded
	})
}

func (r *fileRepository) List(_ context.Context) ([]*Coupon, error) {
	doc := couponDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *fileRepository) Create(_ context.Context, input NewCouponInput) (*Coupon, error) {
	doc := couponDoc{}
	var created *Coupon
	err := r.store.Update(&doc, func() error {
		for _, c := range doc {
			if c.Code == input.Code {
				return ErrCodeExists
			}
		}
		created = &Coupon{
			ID:             uuid.New().String(),
			Code:           input.Code,
			Name:           input.Name,
			Description:    input.Description,
			DiscountType:   input.DiscountType,
			DiscountValue:  input.DiscountValue,
			MaxDiscount:    input.MaxDiscount,
			MinOrderAmount: input.MinOrderAmount,
			MaxUsage:       input.MaxUsage,
			ExpiryDate:     input.ExpiryDate,
			IsActive:       input.IsActive,
			CreatedAt:      time.Now(),
		}
		doc = append(doc, created)
		return nil
	})
	return created, err
}

func (r *fileRepository) Update(_ context.Context, input UpdateCouponInput) (*Coupon, error) {
	doc := couponDoc{}
	var updated *Coupon
	err := r.store.Update(&doc, func() error {
		for _, c := range doc {
			if c.ID != input.CouponID {
				continue
			}
			if input.Name != nil {
				c.Name = *input.Name
			}
			if input.Description != nil {
				c.Description = *input.Description
			}
			if input.DiscountType != nil {
				c.DiscountType = *input.DiscountType
			}
			if input.DiscountValue != nil {
				c.DiscountValue = *input.DiscountValue
			}
			if input.MaxDiscount != nil {
				c.MaxDiscount = input.MaxDiscount
			}
			if input.MinOrderAmount != nil {
				c.MinOrderAmount = input.MinOrderAmount
			}
			if input.MaxUsage != nil {
				c.MaxUsage = input.MaxUsage
			}
			if input.ExpiryDate != nil {
				c.ExpiryDate = input.ExpiryDate
			}
			if input.IsActive != nil {
				c.IsActive = *input.IsActive
			}
			now := time.Now()
			c.UpdatedAt = &now
			updated = c
			return nil
		}
		return ErrCouponNotFound
	})
	return updated, err
}

func (r *fileRepository) Deactivate(_ context.Context, couponID string) error {
	doc := couponDoc{}
	return r.store.Update(&doc, func() error {
		for _, c := range doc {
			if c.ID == couponID {
				c.IsActive = false
				now := time.Now()
				c.UpdatedAt = &now
				return nil
			}
		}
		return ErrCouponNotFound
	})
}
