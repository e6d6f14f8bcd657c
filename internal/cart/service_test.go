package cart

import (
	"context"
	"errors"
	"testing"

	"vesture-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context, userID uint) ([]Line, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Line), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, userID uint, lines []Line) error {
	args := m.Called(ctx, userID, lines)
	return args.Error(0)
}

func (m *MockStore) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockProductRepository is a mock for the product repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, opts product.GetProductOptions) (*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, input product.NewProductInput) (*product.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, input product.UpdateProductInput) (*product.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Deactivate(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func activeTee() *product.Product {
	return &product.Product{
		ID:       "p1",
		Name:     "Oversized Tee",
		Price:    799,
		Image:    "tee.jpg",
		Sizes:    []string{"S", "M", "L"},
		IsActive: true,
	}
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	const userID = uint(7)

	t.Run("Success", func(t *testing.T) {
		store := new(MockStore)
		prodRepo := new(MockProductRepository)
		svc := NewService(store, prodRepo)

		prodRepo.On("GetByID", ctx, product.GetProductOptions{ProductID: "p1", OnlyActive: true}).
			Return(activeTee(), nil)
		store.On("Load", ctx, userID).Return([]Line{}, nil)
		store.On("Save", ctx, userID, mock.AnythingOfType("[]cart.Line")).Return(nil)

		lines, err := svc.AddItem(ctx, userID, AddItemParams{ProductID: "p1", Size: "M"})

		assert.NoError(t, err)
		if assert.Len(t, lines, 1) {
			assert.Equal(t, 1, lines[0].Quantity, "quantity defaults to 1")
			assert.Equal(t, DefaultColor, lines[0].Color, "color defaults")
			assert.Equal(t, 799.0, lines[0].UnitPrice, "price snapshotted from catalog")
		}
		store.AssertExpectations(t)
	})

	t.Run("MergesExistingLine", func(t *testing.T) {
		store := new(MockStore)
		prodRepo := new(MockProductRepository)
		svc := NewService(store, prodRepo)

		existing := []Line{{ProductID: "p1", Size: "M", Color: DefaultColor, Quantity: 2, UnitPrice: 799}}
		prodRepo.On("GetByID", ctx, mock.Anything).Return(activeTee(), nil)
		store.On("Load", ctx, userID).Return(existing, nil)
		store.On("Save", ctx, userID, mock.AnythingOfType("[]cart.Line")).Return(nil)

		lines, err := svc.AddItem(ctx, userID, AddItemParams{ProductID: "p1", Size: "M", Quantity: 3})

		assert.NoError(t, err)
		if assert.Len(t, lines, 1) {
			assert.Equal(t, 5, lines[0].Quantity)
		}
	})

	t.Run("SizeRequired", func(t *testing.T) {
		svc := NewService(new(MockStore), new(MockProductRepository))

		_, err := svc.AddItem(ctx, userID, AddItemParams{ProductID: "p1"})
		assert.ErrorIs(t, err, ErrSizeRequired)
	})

	t.Run("SizeUnavailable", func(t *testing.T) {
		store := new(MockStore)
		prodRepo := new(MockProductRepository)
		svc := NewService(store, prodRepo)

		prodRepo.On("GetByID", ctx, mock.Anything).Return(activeTee(), nil)

		_, err := svc.AddItem(ctx, userID, AddItemParams{ProductID: "p1", Size: "XXL"})
		assert.ErrorIs(t, err, ErrSizeUnavailable)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		store := new(MockStore)
		prodRepo := new(MockProductRepository)
		svc := NewService(store, prodRepo)

		prodRepo.On("GetByID", ctx, mock.Anything).Return(nil, nil)

		_, err := svc.AddItem(ctx, userID, AddItemParams{ProductID: "nope", Size: "M"})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	const userID = uint(7)

	t.Run("Success", func(t *testing.T) {
		store := new(MockStore)
		svc := NewService(store, new(MockProductRepository))

		store.On("Load", ctx, userID).
			Return([]Line{{ProductID: "p1", Size: "M", Color: DefaultColor, Quantity: 1}}, nil)
		store.On("Save", ctx, userID, mock.AnythingOfType("[]cart.Line")).Return(nil)

		lines, err := svc.UpdateQuantity(ctx, userID, UpdateQuantityParams{
			ProductID: "p1", Size: "M", Quantity: 4,
		})
		assert.NoError(t, err)
		assert.Equal(t, 4, lines[0].Quantity)
	})

	t.Run("RejectsZero", func(t *testing.T) {
		svc := NewService(new(MockStore), new(MockProductRepository))

		_, err := svc.UpdateQuantity(ctx, userID, UpdateQuantityParams{
			ProductID: "p1", Size: "M", Quantity: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("LineNotFound", func(t *testing.T) {
		store := new(MockStore)
		svc := NewService(store, new(MockProductRepository))

		store.On("Load", ctx, userID).Return([]Line{}, nil)

		_, err := svc.UpdateQuantity(ctx, userID, UpdateQuantityParams{
			ProductID: "p1", Size: "M", Quantity: 2,
		})
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	const userID = uint(7)

	t.Run("AbsentKeySkipsSave", func(t *testing.T) {
		store := new(MockStore)
		svc := NewService(store, new(MockProductRepository))

		store.On("Load", ctx, userID).
			Return([]Line{{ProductID: "p1", Size: "M", Color: DefaultColor, Quantity: 1}}, nil)

		lines, err := svc.RemoveItem(ctx, userID, Key{ProductID: "p9", Size: "M", Color: DefaultColor})

		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StoreError", func(t *testing.T) {
		store := new(MockStore)
		svc := NewService(store, new(MockProductRepository))

		store.On("Load", ctx, userID).Return(nil, errors.New("disk gone"))

		_, err := svc.RemoveItem(ctx, userID, Key{ProductID: "p1", Size: "M", Color: DefaultColor})
		assert.Error(t, err)
	})
}
