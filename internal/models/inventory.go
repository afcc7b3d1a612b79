package models

import "time"

// DefaultMinQuantity is the low-stock threshold used when an item does
// not carry its own.
const DefaultMinQuantity = 5

// InventoryItem is a baking ingredient tracked by the admin console.
type InventoryItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Ingredient  string    `json:"ingredient" validate:"required,min=1,max=100"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Unit        string    `json:"unit" validate:"required,max=20"`
	Category    string    `json:"category"` // normalized on write, see NormalizeCategory
	LowStock    bool      `json:"low_stock"`
	MinQuantity int       `json:"min_quantity" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsLowStock reports whether a quantity is at or below the minimum
// threshold.
func IsLowStock(quantity, minQuantity int) bool {
	return quantity <= minQuantity
}

// SyncLowStock recomputes the persisted low-stock flag from the current
// quantity and threshold. Writers must call this with every quantity
// change; the flag is stored, not derived at read time.
func (i *InventoryItem) SyncLowStock() {
	if i.MinQuantity <= 0 {
		i.MinQuantity = DefaultMinQuantity
	}
	i.LowStock = IsLowStock(i.Quantity, i.MinQuantity)
}
