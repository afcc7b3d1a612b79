package models_test

import (
	"testing"

	"bakeshop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, models.CanTransition(models.OrderPending, models.OrderCompleted))
	assert.True(t, models.CanTransition(models.OrderPending, models.OrderCancelled))

	// terminal states stay put
	assert.False(t, models.CanTransition(models.OrderCompleted, models.OrderCancelled))
	assert.False(t, models.CanTransition(models.OrderCompleted, models.OrderPending))
	assert.False(t, models.CanTransition(models.OrderCancelled, models.OrderCompleted))

	// pending -> pending is not a transition
	assert.False(t, models.CanTransition(models.OrderPending, models.OrderPending))

	assert.False(t, models.CanTransition(models.OrderPending, models.OrderStatus("shipped")))
}

func TestOrderEditable(t *testing.T) {
	order := models.Order{Status: models.OrderPending}
	assert.True(t, order.Editable())

	order.Status = models.OrderCompleted
	assert.False(t, order.Editable())

	order.Status = models.OrderCancelled
	assert.False(t, order.Editable())
}

func TestTerminal(t *testing.T) {
	assert.False(t, models.OrderPending.Terminal())
	assert.True(t, models.OrderCompleted.Terminal())
	assert.True(t, models.OrderCancelled.Terminal())
}
