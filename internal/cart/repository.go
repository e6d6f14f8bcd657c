package cart

import (
	"context"
	"database/sql"

	"vesture-be/internal/logger"

	"go.uber.org/zap"
)

type repository struct {
	db *sql.DB
}

// NewRepository returns the postgres-backed cart store.
func NewRepository(db *sql.DB) Store {
	return &repository{db: db}
}

func (r *repository) Load(ctx context.Context, userID uint) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT product_id, name, unit_price, original_price, image, size, color, quantity
	FROM carts
	WHERE user_id = $1
	ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.ProductID,
			&l.Name,
			&l.UnitPrice,
			&l.OriginalPrice,
			&l.Image,
			&l.Size,
			&l.Color,
			&l.Quantity,
		); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *repository) Save(ctx context.Context, userID uint, lines []Line) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Save"),
		zap.Uint("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID); err != nil {
		return err
	}

	const insert = `
	INSERT INTO carts (user_id, product_id, name, unit_price, original_price, image, size, color, quantity)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, l := range lines {
		if _, err := tx.ExecContext(ctx, insert,
			userID,
			l.ProductID,
			l.Name,
			l.UnitPrice,
			l.OriginalPrice,
			l.Image,
			l.Size,
			l.Color,
			l.Quantity,
		); err != nil {
			log.Error("failed to save cart line",
				zap.String("product_id", l.ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) Clear(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
