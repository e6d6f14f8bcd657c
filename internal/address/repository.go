package address

import (
	"context"
	"database/sql"

	"vesture-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetByUserID(ctx context.Context, userID uint) ([]*Address, error)
	GetByID(ctx context.Context, addressID string) (*Address, error)

	Create(ctx context.Context, addr *Address) error
	Deactivate(ctx context.Context, addressID string) error

	ClearDefault(ctx context.Context, userID uint) error
	SetDefault(ctx context.Context, userID uint, addressID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const addressColumns = `id, user_id, name, phone, address_line1, address_line2,
	landmark, city, state, pincode, address_type, is_default, is_active, created_at`

func scanAddress(row interface{ Scan(...any) error }) (*Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID,
		&a.Name, &a.Phone,
		&a.AddressLine1, &a.AddressLine2,
		&a.Landmark, &a.City, &a.State, &a.Pincode,
		&a.AddressType, &a.IsDefault, &a.IsActive, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) ([]*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetByUserID"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
	SELECT `+addressColumns+`
	FROM addresses
	WHERE user_id = $1 AND is_active = TRUE
	ORDER BY is_default DESC, created_at DESC
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := []*Address{}
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, addressID string) (*Address, error) {
	a, err := scanAddress(r.db.QueryRowContext(ctx, `
	SELECT `+addressColumns+`
	FROM addresses
	WHERE id = $1 AND is_active = TRUE
	LIMIT 1
	`, addressID))
	if err == sql.ErrNoRows {
		return nil, ErrAddressNotFound
	}
	return a, err
}

func (r *repository) Create(ctx context.Context, addr *Address) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("address_id", addr.ID),
	)

	_, err := r.db.ExecContext(ctx, `
	INSERT INTO addresses (
		id, user_id, name, phone, address_line1, address_line2,
		landmark, city, state, pincode, address_type, is_default, is_active
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		addr.ID, addr.UserID,
		addr.Name, addr.Phone,
		addr.AddressLine1, addr.AddressLine2,
		addr.Landmark, addr.City, addr.State, addr.Pincode,
		addr.AddressType, addr.IsDefault, addr.IsActive,
	)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
	}
	return err
}

func (r *repository) Deactivate(ctx context.Context, addressID string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE addresses
	SET is_active = FALSE, is_default = FALSE
	WHERE id = $1
	`, addressID)
	return err
}

func (r *repository) ClearDefault(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE addresses
	SET is_default = FALSE
	WHERE user_id = $1 AND is_default = TRUE
	`, userID)
	return err
}

func (r *repository) SetDefault(ctx context.Context, userID uint, addressID string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE addresses
	SET is_default = TRUE
	WHERE user_id = $1 AND id = $2 AND is_active = TRUE
	`, userID, addressID)
	return err
}
