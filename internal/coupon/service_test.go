package coupon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActiveByCode(ctx context.Context, code string) (*Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coupon), args.Error(1)
}

func (m *MockRepository) IncrementUsage(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]*Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Coupon), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewCouponInput) (*Coupon, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coupon), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, input UpdateCouponInput) (*Coupon, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Coupon), args.Error(1)
}

func (m *MockRepository) Deactivate(ctx context.Context, couponID string) error {
	args := m.Called(ctx, couponID)
	return args.Error(0)
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

// welcome10 mirrors the store's default onboarding coupon: 10% off,
// capped at 500, minimum order 1000.
func welcome10() *Coupon {
	return &Coupon{
		ID:             "c1",
		Code:           "WELCOME10",
		Name:           "Welcome offer",
		DiscountType:   DiscountPercentage,
		DiscountValue:  10,
		MaxDiscount:    f64(500),
		MinOrderAmount: f64(1000),
		MaxUsage:       intp(100),
		UsedCount:      10,
		IsActive:       true,
	}
}

func TestService_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("PercentageDiscount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(welcome10(), nil)

		res, err := svc.Validate(ctx, "welcome10", 2000)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, 200.0, res.DiscountAmount)
		assert.Equal(t, "Discount of ₹200.00 applied", res.Message)
	})

	t.Run("PercentageCappedAtMaxDiscount", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(welcome10(), nil)

		res, err := svc.Validate(ctx, "WELCOME10", 10000)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, 500.0, res.DiscountAmount, "10%% of 10000 exceeds the 500 cap")
	})

	t.Run("CodeNormalized", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(welcome10(), nil)

		res, err := svc.Validate(ctx, "  welcome10  ", 2000)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "NOPE").Return(nil, nil)

		res, err := svc.Validate(ctx, "NOPE", 2000)
		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Invalid coupon code", res.Message)
	})

	t.Run("Expired", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		c := welcome10()
		past := time.Now().Add(-time.Hour)
		c.ExpiryDate = &past
		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(c, nil)

		res, err := svc.Validate(ctx, "WELCOME10", 2000)
		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Coupon has expired", res.Message)
	})

	t.Run("ExpiredBeatsUsage", func(t *testing.T) {
		// A coupon both expired and exhausted reports expiry
		repo := new(MockRepository)
		svc := NewService(repo)

		c := welcome10()
		past := time.Now().Add(-time.Hour)
		c.ExpiryDate = &past
		c.UsedCount = *c.MaxUsage
		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(c, nil)

		res, err := svc.Validate(ctx, "WELCOME10", 2000)
		assert.NoError(t, err)
		assert.Equal(t, "Coupon has expired", res.Message)
	})

	t.Run("BelowMinimumOrder", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(welcome10(), nil)

		res, err := svc.Validate(ctx, "WELCOME10", 999)
		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Minimum order amount of ₹1000 required", res.Message)
	})

	t.Run("ExactMinimumPasses", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(welcome10(), nil)

		res, err := svc.Validate(ctx, "WELCOME10", 1000)
		assert.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("UsageLimitReached", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		c := welcome10()
		c.UsedCount = *c.MaxUsage
		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(c, nil)

		res, err := svc.Validate(ctx, "WELCOME10", 2000)
		assert.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, "Coupon usage limit reached", res.Message)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetActiveByCode", ctx, "WELCOME10").Return(nil, errors.New("db down"))

		_, err := svc.Validate(ctx, "WELCOME10", 2000)
		assert.Error(t, err)
	})
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("IncrementUsage", ctx, "WELCOME10").Return(nil)

	assert.NoError(t, svc.Apply(ctx, " welcome10 "))
	repo.AssertExpectations(t)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(in NewCouponInput) bool {
			return in.Code == "SALE20"
		})).Return(&Coupon{ID: "c2", Code: "SALE20"}, nil)

		c, err := svc.Create(ctx, NewCouponInput{
			Code:          "sale20",
			DiscountType:  DiscountPercentage,
			DiscountValue: 20,
			IsActive:      true,
		})
		assert.NoError(t, err)
		assert.Equal(t, "SALE20", c.Code)
	})

	t.Run("RejectsEmptyCode", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, NewCouponInput{DiscountType: DiscountFixed, DiscountValue: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RejectsPercentageOver100", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, NewCouponInput{
			Code: "X", DiscountType: DiscountPercentage, DiscountValue: 120,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, NewCouponInput{
			Code: "X", DiscountType: "bogus", DiscountValue: 10,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
