package models

import "gorm.io/gorm"

// CakeStatus describes the sale availability of a cake.
type CakeStatus string

const (
	StatusAvailable  CakeStatus = "Available"
	StatusLowStock   CakeStatus = "Low Stock"
	StatusOutOfStock CakeStatus = "Out of Stock"
)

// CakeVariant is a named size of a cake with its own price,
// overriding the base price when selected.
type CakeVariant struct {
	Label string  `json:"label" validate:"required"`
	Price float64 `json:"price" validate:"gt=0"`
}

// Cake represents a cake in the catalog.
type Cake struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string        `json:"name" validate:"required,min=2,max=100"`
	Price       float64       `json:"price" validate:"required,gt=0"` // base (default) price
	Images      []string      `json:"images" gorm:"serializer:json"`
	Category    string        `json:"category"` // free text, not a foreign key
	Status      CakeStatus    `json:"status"`
	Stock       int           `json:"stock" validate:"gte=0"`
	Description string        `json:"description" validate:"omitempty,max=500"`
	Rate        float64       `json:"rate" validate:"gte=0,lte=5"`
	Discount    float64       `json:"discount" validate:"gte=0,lte=100"` // percent
	Variants    []CakeVariant `json:"variants" gorm:"serializer:json" validate:"omitempty,dive"`
	gorm.Model                // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Thumbnail returns the first image, or empty when none is set.
func (c *Cake) Thumbnail() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}

// Available reports whether the cake can currently be ordered.
func (c *Cake) Available() bool {
	return c.Status != StatusOutOfStock && c.Stock > 0
}

// PriceRange returns the displayed price bounds. With no variants both
// bounds equal the base price; otherwise the range spans the variant
// prices together with the base price.
func (c *Cake) PriceRange() (min, max float64) {
	min, max = c.Price, c.Price
	for _, v := range c.Variants {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	return min, max
}
