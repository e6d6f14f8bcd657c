package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, opts GetProductOptions) (*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, input UpdateProductInput) (*Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Deactivate(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingProductIsNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, mock.Anything).Return(nil, nil)

		_, err := svc.GetByID(ctx, "nope", true)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(in NewProductInput) bool {
			return in.Name == "Oversized Tee"
		})).Return(&Product{ID: "p1", Name: "Oversized Tee"}, nil)

		p, err := svc.Create(ctx, NewProductInput{
			Name:  "  Oversized Tee  ",
			Price: 799,
			Sizes: []string{"M"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, NewProductInput{Price: 799, Sizes: []string{"M"}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RejectsNoSizes", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, NewProductInput{Name: "Tee", Price: 799})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("RejectsNegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.Create(ctx, NewProductInput{Name: "Tee", Price: -1, Sizes: []string{"M"}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestHasSize(t *testing.T) {
	p := &Product{Sizes: []string{"S", "M"}}
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))
}
