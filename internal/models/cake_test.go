package models_test

import (
	"testing"

	"bakeshop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPriceRange(t *testing.T) {
	cake := models.Cake{Price: 30}
	min, max := cake.PriceRange()
	assert.Equal(t, 30.0, min)
	assert.Equal(t, 30.0, max)

	cake.Variants = []models.CakeVariant{
		{Label: "10cm", Price: 25},
		{Label: "15cm", Price: 45},
	}
	min, max = cake.PriceRange()
	assert.Equal(t, 25.0, min)
	assert.Equal(t, 45.0, max)

	// base price participates in the range
	cake.Price = 10
	min, max = cake.PriceRange()
	assert.Equal(t, 10.0, min)
	assert.Equal(t, 45.0, max)
}

func TestAvailable(t *testing.T) {
	cake := models.Cake{Status: models.StatusAvailable, Stock: 3}
	assert.True(t, cake.Available())

	cake.Status = models.StatusOutOfStock
	assert.False(t, cake.Available())

	cake.Status = models.StatusLowStock
	cake.Stock = 0
	assert.False(t, cake.Available())
}

func TestThumbnail(t *testing.T) {
	cake := models.Cake{}
	assert.Equal(t, "", cake.Thumbnail())

	cake.Images = []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"}
	assert.Equal(t, "https://img.example.com/a.jpg", cake.Thumbnail())
}
