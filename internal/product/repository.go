package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"vesture-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, opts GetProductOptions) (*Product, error)
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	Create(ctx context.Context, input NewProductInput) (*Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*Product, error)
	Deactivate(ctx context.Context, productID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, price, original_price, discount, image, images,
	category, description, sizes, colors, stock, rating, reviews, is_active, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	var images, sizes, colors pq.StringArray
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.OriginalPrice,
		&p.Discount,
		&p.Image,
		&images,
		&p.Category,
		&p.Description,
		&sizes,
		&colors,
		&p.Stock,
		&p.Rating,
		&p.Reviews,
		&p.IsActive,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Images = images
	p.Sizes = sizes
	p.Colors = colors
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, opts GetProductOptions) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if opts.OnlyActive {
		query += ` AND is_active = TRUE`
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, opts.ProductID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := uint16(20)
	if opts.Limit != nil && *opts.Limit > 0 {
		finalLimit = *opts.Limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := uint16(1)
	if opts.Page != nil && *opts.Page > 0 {
		finalPage = *opts.Page
	}

	offset := int((finalPage - 1) * finalLimit)

	// ---------- where ----------
	where := []string{"1=1"}
	args := []any{}

	if opts.OnlyActive {
		where = append(where, "is_active = TRUE")
	}
	if opts.Category != nil && *opts.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, *opts.Category)
	}
	if opts.Search != nil && *opts.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+*opts.Search+"%")
	}

	// ---------- sort ----------
	field := "created_at"
	switch opts.SortField {
	case "price":
		field = "price"
	case "name":
		field = "name"
	}
	dir := "DESC"
	if opts.SortAsc {
		dir = "ASC"
	}

	query := `SELECT ` + productColumns + `
	FROM products
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY ` + field + ` ` + dir + `
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	result := make([]*Product, 0, finalLimit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) Create(ctx context.Context, input NewProductInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("name", input.Name),
	)

	query := `
	INSERT INTO products (
		id, name, price, original_price, discount, image, images,
		category, description, sizes, colors, stock
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		uuid.New().String(),
		input.Name,
		input.Price,
		input.OriginalPrice,
		input.Discount,
		input.Image,
		pq.Array(input.Images),
		input.Category,
		input.Description,
		pq.Array(input.Sizes),
		pq.Array(input.Colors),
		input.Stock,
	))
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (r *repository) Update(ctx context.Context, input UpdateProductInput) (*Product, error) {
	set := []string{}
	args := []any{}

	addSet := func(col string, v any) {
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, v)
	}

	if input.Name != nil {
		addSet("name", *input.Name)
	}
	if input.Price != nil {
		addSet("price", *input.Price)
	}
	if input.OriginalPrice != nil {
		addSet("original_price", *input.OriginalPrice)
	}
	if input.Discount != nil {
		addSet("discount", *input.Discount)
	}
	if input.Image != nil {
		addSet("image", *input.Image)
	}
	if input.Images != nil {
		addSet("images", pq.Array(input.Images))
	}
	if input.Category != nil {
		addSet("category", *input.Category)
	}
	if input.Description != nil {
		addSet("description", *input.Description)
	}
	if input.Sizes != nil {
		addSet("sizes", pq.Array(input.Sizes))
	}
	if input.Colors != nil {
		addSet("colors", pq.Array(input.Colors))
	}
	if input.Stock != nil {
		addSet("stock", *input.Stock)
	}
	if input.IsActive != nil {
		addSet("is_active", *input.IsActive)
	}

	if len(set) == 0 {
		return nil, ErrInvalidInput
	}

	query := `UPDATE products SET ` + strings.Join(set, ", ") +
		` WHERE id = $` + fmt.Sprint(len(args)+1) +
		` RETURNING ` + productColumns
	args = append(args, input.ProductID)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (r *repository) Deactivate(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = FALSE WHERE id = $1`, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
