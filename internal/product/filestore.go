package product

import (
	"context"
	"sort"
	"strings"
	"time"

	"vesture-be/internal/storage"

	"github.com/google/uuid"
)

type fileRepository struct {
	store *storage.FileStore
}

func NewFileRepository(dir string) (Repository, error) {
	fs, err := storage.NewFileStore(dir, "products")
	if err != nil {
		return nil, err
	}
	return &fileRepository{store: fs}, nil
}

type productDoc []*Product

func (r *fileRepository) GetByID(_ context.Context, opts GetProductOptions) (*Product, error) {
	doc := productDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}
	for _, p := range doc {
		if p.ID != opts.ProductID {
			continue
		}
		if opts.OnlyActive && !p.IsActive {
			return nil, nil
		}
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fileRepository) List(_ context.Context, opts ListOptions) ([]*Product, error) {
	doc := productDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}

	result := []*Product{}
	for _, p := range doc {
		if opts.OnlyActive && !p.IsActive {
			continue
		}
		if opts.Category != nil && p.Category != *opts.Category {
			continue
		}
		if opts.Search != nil {
			q := strings.ToLower(*opts.Search)
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		result = append(result, p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		var less bool
		switch opts.SortField {
		case "price":
			less = result[i].Price < result[j].Price
		case "name":
			less = result[i].Name < result[j].Name
		default:
			less = result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		if opts.SortAsc {
			return less
		}
		return !less
	})

	limit := 20
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = int(*opts.Limit)
	}
	if limit > 100 {
		limit = 100
	}
	offset := 0
	if opts.Page != nil && *opts.Page > 1 {
		offset = (int(*opts.Page) - 1) * limit
	}

	if offset >= len(result) {
		return []*Product{}, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fileRepository) Create(_ context.Context, input NewProductInput) (*Product, error) {
	doc := productDoc{}
	created := &Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Discount:      input.Discount,
		Image:         input.Image,
		Images:        input.Images,
		Category:      input.Category,
		Description:   input.Description,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		Stock:         input.Stock,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	err := r.store.Update(&doc, func() error {
		doc = append(doc, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateProductInput) (*Product, error) {
	doc := productDoc{}
	var updated *Product
	err := r.store.Update(&doc, func() error {
		for _, p := range doc {
			if p.ID != input.ProductID {
				continue
			}
			if input.Name != nil {
				p.Name = *input.Name
			}
			if input.Price != nil {
				p.Price = *input.Price
			}
			if input.OriginalPrice != nil {
				p.OriginalPrice = input.OriginalPrice
			}
			if input.Discount != nil {
				p.Discount = input.Discount
			}
			if input.Image != nil {
				p.Image = *input.Image
			}
			if input.Images != nil {
				p.Images = input.Images
			}
			if input.Category != nil {
				p.Category = *input.Category
			}
			if input.Description != nil {
				p.Description = *input.Description
			}
			if input.Sizes != nil {
				p.Sizes = input.Sizes
			}
			if input.Colors != nil {
				p.Colors = input.Colors
			}
			if input.Stock != nil {
				p.Stock = *input.Stock
			}
			if input.IsActive != nil {
				p.IsActive = *input.IsActive
			}
			updated = p
			return nil
		}
		return ErrProductNotFound
	})
	return updated, err
}

func (r *fileRepository) Deactivate(_ context.Context, productID string) error {
	doc := productDoc{}
	return r.store.Update(&doc, func() error {
		for _, p := range doc {
			if p.ID == productID {
				p.IsActive = false
				return nil
			}
		}
		return ErrProductNotFound
	})
}
