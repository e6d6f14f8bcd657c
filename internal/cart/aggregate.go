package cart

// Pure aggregation over cart lines. Persistence is handled by the Store; every
// mutation here takes the current lines and returns the next state.

// Merge adds a line to the cart. When a line with the same
// (productID, size, color) already exists its quantity is incremented,
// otherwise the line is appended.
func Merge(lines []Line, add Line) []Line {
	key := add.Key()
	for i, l := range lines {
		if l.Key() == key {
			next := make([]Line, len(lines))
			copy(next, lines)
			next[i].Quantity += add.Quantity
			return next
		}
	}
	return append(append([]Line{}, lines...), add)
}

// Remove deletes the matching line. Removing a combination that is not in the
// cart is a no-op, not an error.
func Remove(lines []Line, key Key) []Line {
	next := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Key() != key {
			next = append(next, l)
		}
	}
	return next
}

// SetQuantity sets the quantity of the matching line. Quantities below 1 are
// the caller's responsibility to clamp; the aggregate leaves the line
// untouched for qty < 1. The second return reports whether a line matched.
func SetQuantity(lines []Line, key Key, qty int) ([]Line, bool) {
	if qty < 1 {
		return lines, false
	}
	for i, l := range lines {
		if l.Key() == key {
			next := make([]Line, len(lines))
			copy(next, lines)
			next[i].Quantity = qty
			return next, true
		}
	}
	return lines, false
}

// Subtotal is the sum over lines of unit price times quantity.
func Subtotal(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Total()
	}
	return total
}

// ItemCount is the sum of line quantities, not the number of distinct lines.
func ItemCount(lines []Line) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
