package repositories

import (
	"bakeshop/internal/models"
)

// OrderRepository defines the interface for order data access. Orders
// are never hard-deleted, so there is no Delete.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
	UpdateContact(id string, phone, address string) error
}
