package models

import "gorm.io/gorm"

// User roles.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents a customer or administrator. The cart is embedded in
// the user row as a JSON column rather than living in its own table,
// matching the one-document-per-user shape of the storefront.
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string     `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string     `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string     `json:"role" gorm:"type:varchar(20);default:customer"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	Cart       []CartLine `json:"cart" gorm:"serializer:json"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// IsAdmin reports whether the user may use the admin surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
