package services

import (
	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
)

// BannerService handles business logic related to storefront banners.
type BannerService struct {
	repo repositories.BannerRepository
}

// NewBannerService creates a new BannerService.
func NewBannerService(repo repositories.BannerRepository) *BannerService {
	return &BannerService{
		repo: repo,
	}
}

// GetAllBanners retrieves all banners, newest first.
func (s *BannerService) GetAllBanners() ([]models.Banner, error) {
	return s.repo.GetAll()
}

// CreateBanner creates a new banner.
func (s *BannerService) CreateBanner(banner *models.Banner) error {
	return s.repo.Create(banner)
}

// UpdateBanner updates an existing banner.
func (s *BannerService) UpdateBanner(banner *models.Banner) error {
	return s.repo.Update(banner)
}

// DeleteBanner deletes a banner by its ID.
func (s *BannerService) DeleteBanner(id string) error {
	return s.repo.Delete(id)
}
