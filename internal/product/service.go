package product

import (
	"context"
	"strings"

	"vesture-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for the catalog.
type Service interface {
	GetByID(ctx context.Context, productID string, onlyActive bool) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*Product, error)
	Deactivate(ctx context.Context, productID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, productID string, onlyActive bool) (*Product, error) {
	p, err := s.repo.GetByID(ctx, GetProductOptions{ProductID: productID, OnlyActive: onlyActive})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Price < 0 {
		return nil, ErrInvalidInput
	}
	if len(input.Sizes) == 0 {
		return nil, ErrInvalidInput
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) Update(ctx context.Context, input UpdateProductInput) (*Product, error) {
	if input.ProductID == "" {
		return nil, ErrInvalidInput
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Update(ctx, input)
}

func (s *service) Deactivate(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrInvalidInput
	}
	return s.repo.Deactivate(ctx, productID)
}
