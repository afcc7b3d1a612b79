package repositories

import "bakeshop/internal/models"

// UserRepository defines the interface for user data access. MutateCart
// applies a read-modify-write of the embedded cart as one logical step:
// implementations must not interleave another cart write between the
// read and the write.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	MutateCart(id string, fn func([]models.CartLine) []models.CartLine) ([]models.CartLine, error)
}
