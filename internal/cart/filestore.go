package cart

import (
	"context"
	"strconv"

	"vesture-be/internal/storage"
)

type fileStore struct {
	store *storage.FileStore
}

// NewFileStore returns the flat-file cart store used when postgres is
// unreachable at startup.
func NewFileStore(dir string) (Store, error) {
	fs, err := storage.NewFileStore(dir, "carts")
	if err != nil {
		return nil, err
	}
	return &fileStore{store: fs}, nil
}

type cartDoc map[string][]Line

func userKey(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

func (s *fileStore) Load(_ context.Context, userID uint) ([]Line, error) {
	doc := cartDoc{}
	if err := s.store.Load(&doc); err != nil {
		return nil, err
	}
	lines := doc[userKey(userID)]
	if lines == nil {
		lines = []Line{}
	}
	return lines, nil
}

func (s *fileStore) Save(_ context.Context, userID uint, lines []Line) error {
	doc := cartDoc{}
	return s.store.Update(&doc, func() error {
		doc[userKey(userID)] = lines
		return nil
	})
}

func (s *fileStore) Clear(_ context.Context, userID uint) error {
	doc := cartDoc{}
	return s.store.Update(&doc, func() error {
		delete(doc, userKey(userID))
		return nil
	})
}
