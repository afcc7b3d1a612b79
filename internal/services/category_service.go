package services

import (
	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
)

// CategoryService handles business logic related to cake categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories, newest first.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory creates a new category with a normalized name.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	category.Name = models.NormalizeCategory(category.Name)
	return s.repo.Create(category)
}

// UpdateCategory updates an existing category, re-normalizing the name.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	category.Name = models.NormalizeCategory(category.Name)
	return s.repo.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
