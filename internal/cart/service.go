package cart

import (
	"context"
	"strings"

	"vesture-be/internal/logger"
	"vesture-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts. One cart per user; the user
// id comes from the request context, never from ambient globals.
type Service interface {
	AddItem(ctx context.Context, userID uint, params AddItemParams) ([]Line, error)
	RemoveItem(ctx context.Context, userID uint, key Key) ([]Line, error)
	UpdateQuantity(ctx context.Context, userID uint, params UpdateQuantityParams) ([]Line, error)
	Get(ctx context.Context, userID uint) ([]Line, error)
	Clear(ctx context.Context, userID uint) error
}

type service struct {
	store       Store
	productRepo product.Repository
}

func NewService(store Store, productRepo product.Repository) Service {
	return &service{store: store, productRepo: productRepo}
}

func (s *service) AddItem(ctx context.Context, userID uint, params AddItemParams) ([]Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.Uint("user_id", userID),
		zap.String("product_id", params.ProductID),
	)

	// 1. Validate input; size must be selected before adding
	if strings.TrimSpace(params.Size) == "" {
		return nil, ErrSizeRequired
	}
	if params.Quantity < 1 {
		params.Quantity = 1
	}
	if params.Color == "" {
		params.Color = DefaultColor
	}

	// 2. Catalog lookup (only active products can be added)
	p, err := s.productRepo.GetByID(ctx, product.GetProductOptions{
		ProductID:  params.ProductID,
		OnlyActive: true,
	})
	if err != nil {
		log.Error("failed to get product", zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if !p.HasSize(params.Size) {
		return nil, ErrSizeUnavailable
	}

	// 3. Merge into the existing lines
	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := Merge(lines, Line{
		ProductID:     p.ID,
		Name:          p.Name,
		UnitPrice:     p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Size:          params.Size,
		Color:         params.Color,
		Quantity:      params.Quantity,
	})

	// 4. Persist
	if err := s.store.Save(ctx, userID, next); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return nil, err
	}

	log.Info("item added to cart",
		zap.String("size", params.Size),
		zap.Int("quantity", params.Quantity),
	)

	return next, nil
}

func (s *service) RemoveItem(ctx context.Context, userID uint, key Key) ([]Line, error) {
	if key.Color == "" {
		key.Color = DefaultColor
	}

	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Removing a combination that is not present is a no-op
	next := Remove(lines, key)
	if len(next) == len(lines) {
		return lines, nil
	}

	if err := s.store.Save(ctx, userID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) UpdateQuantity(ctx context.Context, userID uint, params UpdateQuantityParams) ([]Line, error) {
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if params.Color == "" {
		params.Color = DefaultColor
	}

	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := Key{ProductID: params.ProductID, Size: params.Size, Color: params.Color}
	next, ok := SetQuantity(lines, key, params.Quantity)
	if !ok {
		return nil, ErrCartItemNotFound
	}

	if err := s.store.Save(ctx, userID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) Get(ctx context.Context, userID uint) ([]Line, error) {
	return s.store.Load(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID uint) error {
	return s.store.Clear(ctx, userID)
}
