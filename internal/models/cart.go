package models

// CartLine is one entry in a user's in-progress order. It mirrors the
// OrderItem shape so checkout can snapshot lines verbatim.
type CartLine = OrderItem

// noVariantKey is the sentinel label used when comparing lines without a
// size variant. It is never stored.
const noVariantKey = "std"

func variantKey(v *OrderVariant) string {
	if v == nil || v.Label == "" {
		return noVariantKey
	}
	return v.Label
}

// SameLine reports whether two lines are the same logical item: equal
// cake identity and equal variant label.
func SameLine(a, b CartLine) bool {
	return a.CakeID == b.CakeID && variantKey(a.Variant) == variantKey(b.Variant)
}

// MergeLine returns a new cart with add reconciled into lines: if an
// existing line matches on cake id + variant label its quantity grows by
// add.Quantity, otherwise add is appended. The input slice is not
// modified. Line count stays the same on merge and grows by exactly one
// on append.
func MergeLine(lines []CartLine, add CartLine) []CartLine {
	out := make([]CartLine, len(lines), len(lines)+1)
	copy(out, lines)
	for i := range out {
		if SameLine(out[i], add) {
			out[i].Quantity += add.Quantity
			return out
		}
	}
	return append(out, add)
}

// IncreaseLine returns a new cart with the line at index incremented by
// one. An out-of-range index leaves the cart unchanged.
func IncreaseLine(lines []CartLine, index int) []CartLine {
	if index < 0 || index >= len(lines) {
		return lines
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	out[index].Quantity++
	return out
}

// DecreaseLine returns a new cart with the line at index decremented by
// one, never going below a quantity of 1. Decrementing a line already at
// 1 is a no-op, as is an out-of-range index.
func DecreaseLine(lines []CartLine, index int) []CartLine {
	if index < 0 || index >= len(lines) || lines[index].Quantity <= 1 {
		return lines
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	out[index].Quantity--
	return out
}

// RemoveLine returns a new cart with the line at index deleted
// regardless of its quantity, preserving the order of the remaining
// lines. An out-of-range index leaves the cart unchanged.
func RemoveLine(lines []CartLine, index int) []CartLine {
	if index < 0 || index >= len(lines) {
		return lines
	}
	out := make([]CartLine, 0, len(lines)-1)
	out = append(out, lines[:index]...)
	out = append(out, lines[index+1:]...)
	return out
}

// CartTotal sums unit price times quantity across all lines. An empty
// cart totals exactly 0.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}
