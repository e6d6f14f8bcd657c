package cart

import "context"

// Store persists a user's cart lines. Two implementations exist: the postgres
// repository (preferred) and the file store fallback. Which one serves is
// decided once, by the startup probe, never per call.
type Store interface {
	Load(ctx context.Context, userID uint) ([]Line, error)
	Save(ctx context.Context, userID uint, lines []Line) error
	Clear(ctx context.Context, userID uint) error
}
