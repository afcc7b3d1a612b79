package models_test

import (
	"testing"

	"bakeshop/internal/models"

	"github.com/stretchr/testify/assert"
)

func line(cakeID, variant string, qty int, price float64) models.CartLine {
	l := models.CartLine{CakeID: cakeID, Name: "Cake " + cakeID, Price: price, Quantity: qty}
	if variant != "" {
		l.Variant = &models.OrderVariant{Label: variant, Price: price}
	}
	return l
}

func TestMergeLine_AccumulatesMatchingLine(t *testing.T) {
	cart := []models.CartLine{line("A", "10cm", 2, 25.0)}

	merged := models.MergeLine(cart, line("A", "10cm", 3, 25.0))

	assert.Len(t, merged, 1)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, 25.0, merged[0].Price)
	// the input slice is left untouched
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestMergeLine_DistinguishesVariants(t *testing.T) {
	cart := []models.CartLine{line("A", "10cm", 5, 25.0)}

	merged := models.MergeLine(cart, line("A", "15cm", 1, 40.0))

	assert.Len(t, merged, 2)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, 1, merged[1].Quantity)
	assert.Equal(t, "15cm", merged[1].Variant.Label)
}

func TestMergeLine_NoVariantUsesSentinel(t *testing.T) {
	// Two lines without a variant are the same logical item.
	cart := []models.CartLine{line("A", "", 1, 20.0)}

	merged := models.MergeLine(cart, line("A", "", 2, 20.0))
	assert.Len(t, merged, 1)
	assert.Equal(t, 3, merged[0].Quantity)

	// A sized line of the same cake stays separate.
	merged = models.MergeLine(merged, line("A", "10cm", 1, 25.0))
	assert.Len(t, merged, 2)
}

func TestMergeLine_AppendsPreservingOrder(t *testing.T) {
	cart := []models.CartLine{
		line("A", "", 1, 20.0),
		line("B", "", 1, 30.0),
	}

	merged := models.MergeLine(cart, line("C", "", 2, 15.0))

	assert.Len(t, merged, 3)
	assert.Equal(t, "A", merged[0].CakeID)
	assert.Equal(t, "B", merged[1].CakeID)
	assert.Equal(t, "C", merged[2].CakeID)
}

func TestIncreaseLine(t *testing.T) {
	cart := []models.CartLine{line("A", "", 1, 20.0)}

	increased := models.IncreaseLine(cart, 0)
	assert.Equal(t, 2, increased[0].Quantity)

	// out of range is a no-op
	assert.Equal(t, cart, models.IncreaseLine(cart, 5))
	assert.Equal(t, cart, models.IncreaseLine(cart, -1))
}

func TestDecreaseLine_NeverGoesBelowOne(t *testing.T) {
	cart := []models.CartLine{line("A", "", 1, 20.0), line("B", "", 3, 30.0)}

	decreased := models.DecreaseLine(cart, 0)
	assert.Equal(t, 1, decreased[0].Quantity)

	decreased = models.DecreaseLine(cart, 1)
	assert.Equal(t, 2, decreased[1].Quantity)
}

func TestRemoveLine_DeletesRegardlessOfQuantity(t *testing.T) {
	cart := []models.CartLine{
		line("A", "", 5, 20.0),
		line("B", "", 1, 30.0),
		line("C", "", 2, 15.0),
	}

	removed := models.RemoveLine(cart, 1)

	assert.Len(t, removed, 2)
	assert.Equal(t, "A", removed[0].CakeID)
	assert.Equal(t, "C", removed[1].CakeID)

	// out of range is a no-op
	assert.Equal(t, cart, models.RemoveLine(cart, 3))
}

func TestCartTotal(t *testing.T) {
	assert.Equal(t, 0.0, models.CartTotal(nil))
	assert.Equal(t, 0.0, models.CartTotal([]models.CartLine{}))

	cart := []models.CartLine{
		line("A", "", 2, 25.0),  // 50
		line("B", "", 3, 10.50), // 31.5
	}
	assert.InDelta(t, 81.5, models.CartTotal(cart), 0.0001)
}
