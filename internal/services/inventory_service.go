package services

import (
	"fmt"

	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
)

// InventoryService handles business logic related to ingredient stock.
// Every write path recomputes the low-stock flag together with the
// quantity so the stored flag never drifts.
type InventoryService struct {
	repo repositories.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

// GetAllItems retrieves all inventory items.
func (s *InventoryService) GetAllItems() ([]models.InventoryItem, error) {
	return s.repo.GetAll()
}

// SearchItems retrieves the items passing both the category filter and
// the text query (matched against ingredient and category).
func (s *InventoryService) SearchItems(category, query string) ([]models.InventoryItem, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		if models.MatchesCategory(it.Category, category) &&
			models.MatchesQuery(query, it.Ingredient, it.Category) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// CreateItem creates a new inventory item with a normalized category
// and a consistent low-stock flag.
func (s *InventoryService) CreateItem(item *models.InventoryItem) error {
	if item.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	item.Category = models.NormalizeCategory(item.Category)
	item.SyncLowStock()
	return s.repo.Create(item)
}

// UpdateItem updates an existing item, re-deriving the low-stock flag
// from the submitted quantity and threshold.
func (s *InventoryService) UpdateItem(item *models.InventoryItem) error {
	if item.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	item.Category = models.NormalizeCategory(item.Category)
	item.SyncLowStock()
	return s.repo.Update(item)
}

// AdjustStock applies a delta to an item's quantity, clamping at zero,
// and persists quantity and low-stock flag in the same write.
func (s *InventoryService) AdjustStock(id string, delta int) (*models.InventoryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	item.Quantity += delta
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	item.SyncLowStock()

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to adjust stock for item %s: %w", id, err)
	}
	return item, nil
}

// DeleteItem deletes an inventory item by its ID.
func (s *InventoryService) DeleteItem(id string) error {
	return s.repo.Delete(id)
}
