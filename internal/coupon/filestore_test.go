package coupon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_UsageCap(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	one := 1
	_, err = repo.Create(ctx, NewCouponInput{
		Code:          "ONCE",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		MaxUsage:      &one,
		IsActive:      true,
	})
	require.NoError(t, err)

	assert.NoError(t, repo.IncrementUsage(ctx, "ONCE"))
	assert.ErrorIs(t, repo.IncrementUsage(ctx, "ONCE"), ErrUsageExceeded)

	c, err := repo.GetActiveByCode(ctx, "ONCE")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 1, c.UsedCount, "failed increments leave the count untouched")
}

func TestFileRepository_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	input := NewCouponInput{Code: "SALE20", DiscountType: DiscountFixed, DiscountValue: 20, IsActive: true}
	_, err = repo.Create(ctx, input)
	require.NoError(t, err)

	_, err = repo.Create(ctx, input)
	assert.ErrorIs(t, err, ErrCodeExists)
}

func TestFileRepository_GetActiveByCode(t *testing.T) {
	ctx := context.Background()
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	c, err := repo.Create(ctx, NewCouponInput{
		Code: "SALE20", DiscountType: DiscountFixed, DiscountValue: 20, IsActive: true,
	})
	require.NoError(t, err)

	t.Run("UnknownCodeIsNil", func(t *testing.T) {
		got, err := repo.GetActiveByCode(ctx, "NOPE")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DeactivatedHidden", func(t *testing.T) {
		require.NoError(t, repo.Deactivate(ctx, c.ID))

		got, err := repo.GetActiveByCode(ctx, "SALE20")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
