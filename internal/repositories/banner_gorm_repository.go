package repositories

import (
	"fmt"
	"time"

	"bakeshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{
		db: db,
	}
}

// GetAll retrieves all banners, newest first.
func (r *GORMBannerRepository) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	if err := r.db.Order("created_at desc").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get all banners: %w", err)
	}
	return banners, nil
}

// GetByID retrieves a single banner by its ID.
func (r *GORMBannerRepository) GetByID(id string) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.First(&banner, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("banner with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get banner by ID %s: %w", id, err)
	}
	return &banner, nil
}

// Create creates a new banner in the database.
func (r *GORMBannerRepository) Create(banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if banner.CreatedAt.IsZero() {
		banner.CreatedAt = time.Now()
	}
	if err := r.db.Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// Update updates an existing banner in the database.
func (r *GORMBannerRepository) Update(banner *models.Banner) error {
	res := r.db.Save(banner)
	if res.Error != nil {
		return fmt.Errorf("failed to update banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for update", banner.ID)
	}
	return nil
}

// Delete deletes a banner by its ID from the database.
func (r *GORMBannerRepository) Delete(id string) error {
	res := r.db.Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner with ID %s not found for deletion", id)
	}
	return nil
}
