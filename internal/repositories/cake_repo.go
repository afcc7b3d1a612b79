package repositories

import (
	"bakeshop/internal/models"
)

// CakeRepository defines the interface for cake data access.
type CakeRepository interface {
	GetAll() ([]models.Cake, error)
	GetByID(id string) (*models.Cake, error)
	Create(cake *models.Cake) error
	Update(cake *models.Cake) error
	Delete(id string) error
}
