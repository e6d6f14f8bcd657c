package order

import (
	"context"
	"sort"
	"time"

	"vesture-be/internal/storage"
)

type fileRepository struct {
	store *storage.FileStore
}

func NewFileRepository(dir string) (Repository, error) {
	fs, err := storage.NewFileStore(dir, "orders")
	if err != nil {
		return nil, err
	}
	return &fileRepository{store: fs}, nil
}

type orderDoc []*Order

func (r *fileRepository) Create(_ context.Context, o Order) error {
	doc := orderDoc{}
	return r.store.Update(&doc, func() error {
		doc = append(doc, &o)
		return nil
	})
}

func (r *fileRepository) GetByID(_ context.Context, orderID string) (*Order, error) {
	doc := orderDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}
	for _, o := range doc {
		if o.ID == orderID {
			copied := *o
			return &copied, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *fileRepository) List(_ context.Context, opts ListOptions) ([]*Order, error) {
	doc := orderDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}

	result := []*Order{}
	for _, o := range doc {
		if opts.UserID != nil && o.UserID != *opts.UserID {
			continue
		}
		if opts.Status != nil && o.Status != *opts.Status {
			continue
		}
		result = append(result, o)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if opts.Offset >= len(result) {
		return []*Order{}, nil
	}
	result = result[opts.Offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fileRepository) UpdateStatus(_ context.Context, orderID string, status Status) (*Order, error) {
	doc := orderDoc{}
	var updated *Order
	err := r.store.Update(&doc, func() error {
		for _, o := range doc {
			if o.ID == orderID {
				o.Status = status
				now := time.Now()
				o.UpdatedAt = &now
				updated = o
				return nil
			}
		}
		return ErrOrderNotFound
	})
	return updated, err
}
