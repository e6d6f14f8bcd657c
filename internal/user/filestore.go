package user

import (
	"context"
	"time"

	"vesture-be/internal/storage"
)

type fileRepository struct {
	store *storage.FileStore
}

func NewFileRepository(dir string) (Repository, error) {
	fs, err := storage.NewFileStore(dir, "users")
	if err != nil {
		return nil, err
	}
	return &fileRepository{store: fs}, nil
}

type userDoc []User

func (r *fileRepository) Create(_ context.Context, params RegisterParams, hashedPassword, role string) (User, error) {
	doc := userDoc{}
	var created User
	err := r.store.Update(&doc, func() error {
		maxID := 0
		for _, u := range doc {
			if u.Email == params.Email {
				return ErrEmailExists
			}
			if u.ID > maxID {
				maxID = u.ID
			}
		}
		created = User{
			ID:        maxID + 1,
			Name:      params.Name,
			Email:     params.Email,
			Phone:     params.Phone,
			Password:  hashedPassword,
			Role:      Role(role),
			CreatedAt: time.Now(),
		}
		doc = append(doc, created)
		return nil
	})
	return created, err
}

func (r *fileRepository) FindByEmail(_ context.Context, email string) (User, error) {
	doc := userDoc{}
	if err := r.store.Load(&doc); err != nil {
		return User{}, err
	}
	for _, u := range doc {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *fileRepository) FindByID(_ context.Context, id int) (User, error) {
	doc := userDoc{}
	if err := r.store.Load(&doc); err != nil {
		return User{}, err
	}
	for _, u := range doc {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}
