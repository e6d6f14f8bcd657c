package address

import (
	"context"
	"sort"

	"vesture-be/internal/storage"
)

type fileRepository struct {
	store *storage.FileStore
}

func NewFileRepository(dir string) (Repository, error) {
	fs, err := storage.NewFileStore(dir, "addresses")
	if err != nil {
		return nil, err
	}
	return &fileRepository{store: fs}, nil
}

type addressDoc []*Address

func (r *fileRepository) GetByUserID(_ context.Context, userID uint) ([]*Address, error) {
	doc := addressDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}

	res := []*Address{}
	for _, a := range doc {
		if a.UserID == userID && a.IsActive {
			res = append(res, a)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].IsDefault != res[j].IsDefault {
			return res[i].IsDefault
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (r *fileRepository) GetByID(_ context.Context, addressID string) (*Address, error) {
	doc := addressDoc{}
	if err := r.store.Load(&doc); err != nil {
		return nil, err
	}
	for _, a := range doc {
		if a.ID == addressID && a.IsActive {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrAddressNotFound
}

func (r *fileRepository) Create(_ context.Context, addr *Address) error {
	doc := addressDoc{}
	return r.store.Update(&doc, func() error {
		copied := *addr
		doc = append(doc, &copied)
		return nil
	})
}

func (r *fileRepository) Deactivate(_ context.Context, addressID string) error {
	doc := addressDoc{}
	return r.store.Update(&doc, func() error {
		for _, a := range doc {
			if a.ID == addressID {
				a.IsActive = false
				a.IsDefault = false
			}
		}
		return nil
	})
}

func (r *fileRepository) ClearDefault(_ context.Context, userID uint) error {
	doc := addressDoc{}
	return r.store.Update(&doc, func() error {
		for _, a := range doc {
			if a.UserID == userID {
				a.IsDefault = false
			}
		}
		return nil
	})
}

func (r *fileRepository) SetDefault(_ context.Context, userID uint, addressID string) error {
	doc := addressDoc{}
	return r.store.Update(&doc, func() error {
		for _, a := range doc {
			if a.UserID == userID && a.ID == addressID && a.IsActive {
				a.IsDefault = true
			}
		}
		return nil
	})
}
