package repositories

import (
	"fmt"

	"bakeshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCakeRepository is a GORM implementation of CakeRepository.
type GORMCakeRepository struct {
	db *gorm.DB
}

// NewGORMCakeRepository creates a new instance of GORMCakeRepository.
func NewGORMCakeRepository(db *gorm.DB) *GORMCakeRepository {
	return &GORMCakeRepository{
		db: db,
	}
}

// GetAll retrieves all cakes from the database.
func (r *GORMCakeRepository) GetAll() ([]models.Cake, error) {
	var cakes []models.Cake
	if err := r.db.Find(&cakes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cakes: %w", err)
	}
	return cakes, nil
}

// GetByID retrieves a single cake by its ID from the database.
func (r *GORMCakeRepository) GetByID(id string) (*models.Cake, error) {
	var cake models.Cake
	if err := r.db.First(&cake, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cake with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get cake by ID %s: %w", id, err)
	}
	return &cake, nil
}

// Create creates a new cake in the database.
func (r *GORMCakeRepository) Create(cake *models.Cake) error {
	if cake.ID == "" {
		cake.ID = uuid.New().String()
	}
	if err := r.db.Create(cake).Error; err != nil {
		return fmt.Errorf("failed to create cake: %w", err)
	}
	return nil
}

// Update updates an existing cake in the database.
func (r *GORMCakeRepository) Update(cake *models.Cake) error {
	res := r.db.Save(cake) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update cake: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cake with ID %s not found for update", cake.ID)
	}
	return nil
}

// Delete deletes a cake by its ID from the database.
func (r *GORMCakeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Cake{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cake: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cake with ID %s not found for deletion", id)
	}
	return nil
}
