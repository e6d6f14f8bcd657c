package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder() Order {
	return Order{
		ID:                "ORD-1",
		UserID:            7,
		Subtotal:          1598,
		Discount:          0,
		DeliveryFee:       99,
		FinalTotal:        1697,
		Status:            StatusPending,
		PaymentMethod:     PaymentCashOnDelivery,
		PaymentStatus:     PaymentPending,
		DeliveryAddress:   testAddress(),
		EstimatedDelivery: time.Now().AddDate(0, 0, 5),
		CreatedAt:         time.Now(),
		Items: []Item{
			{ProductID: "p1", Name: "Oversized Tee", UnitPrice: 799, Size: "M", Color: "Black", Quantity: 2},
		},
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("HeaderAndItemsInOneTx", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`(?s)INSERT INTO orders`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`(?s)INSERT INTO order_items`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Create(ctx, storedOrder()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemFailureRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`(?s)INSERT INTO orders`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`(?s)INSERT INTO order_items`).
			WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		assert.Error(t, repo.Create(ctx, storedOrder()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM orders WHERE id = \$1`).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err = repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		now := time.Now()
		headerRows := sqlmock.NewRows([]string{
			"id", "user_id", "subtotal", "discount", "delivery_fee", "final_total",
			"coupon_code", "status", "payment_method", "payment_status", "transaction_id",
			"delivery_address", "estimated_delivery", "created_at", "updated_at",
		}).AddRow(
			"ORD-1", 7, 1598.0, 0.0, 99.0, 1697.0,
			nil, "pending", "cod", "pending", nil,
			[]byte(`{"name":"Asha Rao","phone":"9876543210","address_line1":"12 MG Road","city":"Bengaluru","state":"Karnataka","pincode":"560001"}`),
			now.AddDate(0, 0, 5), now, nil,
		)
		mock.ExpectQuery(`(?s)SELECT .* FROM orders WHERE id = \$1`).
			WithArgs("ORD-1").
			WillReturnRows(headerRows)

		itemRows := sqlmock.NewRows([]string{
			"product_id", "name", "unit_price", "original_price", "image", "size", "color", "quantity",
		}).AddRow("p1", "Oversized Tee", 799.0, nil, "tee.jpg", "M", "Black", 2)
		mock.ExpectQuery(`(?s)SELECT .* FROM order_items WHERE order_id = \$1`).
			WithArgs("ORD-1").
			WillReturnRows(itemRows)

		o, err := repo.GetByID(ctx, "ORD-1")
		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", o.DeliveryAddress.Name)
		if assert.Len(t, o.Items, 1) {
			assert.Equal(t, 2, o.Items[0].Quantity)
		}
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)UPDATE orders SET status = \$1`).
			WithArgs(StatusShipped, "nope").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err = repo.UpdateStatus(ctx, "nope", StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
