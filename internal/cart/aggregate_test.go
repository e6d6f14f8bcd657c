package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func line(productID, size, color string, qty int, price float64) Line {
	return Line{
		ProductID: productID,
		Name:      "Tee " + productID,
		UnitPrice: price,
		Size:      size,
		Color:     color,
		Quantity:  qty,
	}
}

func TestMerge(t *testing.T) {
	t.Run("SameVariantMergesQuantities", func(t *testing.T) {
		lines := []Line{line("p1", "M", "Black", 2, 499)}

		next := Merge(lines, line("p1", "M", "Black", 3, 499))

		if assert.Len(t, next, 1) {
			assert.Equal(t, 5, next[0].Quantity)
		}
		// input slice untouched
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("DifferentSizeIsSeparateLine", func(t *testing.T) {
		lines := []Line{line("p1", "M", "Black", 1, 499)}

		next := Merge(lines, line("p1", "L", "Black", 1, 499))

		assert.Len(t, next, 2)
	})

	t.Run("DifferentColorIsSeparateLine", func(t *testing.T) {
		lines := []Line{line("p1", "M", "Black", 1, 499)}

		next := Merge(lines, line("p1", "M", "White", 1, 499))

		assert.Len(t, next, 2)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		next := Merge(nil, line("p1", "M", DefaultColor, 1, 499))
		assert.Len(t, next, 1)
	})
}

func TestRemove(t *testing.T) {
	lines := []Line{
		line("p1", "M", "Black", 1, 499),
		line("p2", "L", DefaultColor, 2, 999),
	}

	t.Run("RemovesMatchingLine", func(t *testing.T) {
		next := Remove(lines, Key{ProductID: "p1", Size: "M", Color: "Black"})
		if assert.Len(t, next, 1) {
			assert.Equal(t, "p2", next[0].ProductID)
		}
	})

	t.Run("AbsentKeyIsNoOp", func(t *testing.T) {
		next := Remove(lines, Key{ProductID: "p9", Size: "M", Color: "Black"})
		assert.Len(t, next, 2)
	})
}

func TestSetQuantity(t *testing.T) {
	lines := []Line{line("p1", "M", "Black", 1, 499)}

	t.Run("UpdatesQuantity", func(t *testing.T) {
		next, ok := SetQuantity(lines, Key{ProductID: "p1", Size: "M", Color: "Black"}, 4)
		assert.True(t, ok)
		assert.Equal(t, 4, next[0].Quantity)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("MissingLine", func(t *testing.T) {
		_, ok := SetQuantity(lines, Key{ProductID: "p2", Size: "M", Color: "Black"}, 4)
		assert.False(t, ok)
	})

	t.Run("QuantityBelowOne", func(t *testing.T) {
		_, ok := SetQuantity(lines, Key{ProductID: "p1", Size: "M", Color: "Black"}, 0)
		assert.False(t, ok)
	})
}

func TestSubtotalAndItemCount(t *testing.T) {
	lines := []Line{
		line("p1", "M", "Black", 2, 499),
		line("p2", "L", DefaultColor, 1, 999),
	}

	assert.Equal(t, 2*499.0+999.0, Subtotal(lines))
	assert.Equal(t, 3, ItemCount(lines))

	t.Run("Empty", func(t *testing.T) {
		assert.Zero(t, Subtotal(nil))
		assert.Zero(t, ItemCount(nil))
	})
}
