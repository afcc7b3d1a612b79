package models

import (
	"strings"
	"time"
	"unicode"
)

// Category is a cake category shown as a filter chip in the storefront.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Icon      string    `json:"icon"` // icon image URL
	CreatedAt time.Time `json:"created_at"`
}

// CategoryAll is the filter value that matches every item.
const CategoryAll = "All"

// DefaultCategory is assigned to items whose category is blank.
const DefaultCategory = "General"

// NormalizeCategory trims the name and folds it to a canonical form:
// blank becomes DefaultCategory, everything else gets the first letter
// upper-cased and the remainder lower-cased.
func NormalizeCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultCategory
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
