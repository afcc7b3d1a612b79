package repositories

import (
	"fmt"
	"sync"

	"bakeshop/internal/models"

	"github.com/google/uuid"
)

// MockCakeRepository is an in-memory implementation of CakeRepository.
type MockCakeRepository struct {
	cakes map[string]models.Cake
	mu    sync.RWMutex
}

// NewMockCakeRepository creates a new instance of MockCakeRepository.
func NewMockCakeRepository() *MockCakeRepository {
	return &MockCakeRepository{
		cakes: make(map[string]models.Cake),
	}
}

// GetAll returns all cakes.
func (r *MockCakeRepository) GetAll() ([]models.Cake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cakeList := make([]models.Cake, 0, len(r.cakes))
	for _, c := range r.cakes {
		cakeList = append(cakeList, c)
	}
	return cakeList, nil
}

// GetByID returns a cake by its ID.
func (r *MockCakeRepository) GetByID(id string) (*models.Cake, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cake, ok := r.cakes[id]
	if !ok {
		return nil, fmt.Errorf("cake with ID %s not found", id)
	}
	return &cake, nil
}

// Create adds a new cake.
func (r *MockCakeRepository) Create(cake *models.Cake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cake.ID == "" {
		cake.ID = uuid.New().String()
	}
	r.cakes[cake.ID] = *cake
	return nil
}

// Update modifies an existing cake.
func (r *MockCakeRepository) Update(cake *models.Cake) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.cakes[cake.ID]
	if !ok {
		return fmt.Errorf("cake with ID %s not found for update", cake.ID)
	}
	r.cakes[cake.ID] = *cake
	return nil
}

// Delete removes a cake by its ID.
func (r *MockCakeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.cakes[id]
	if !ok {
		return fmt.Errorf("cake with ID %s not found for deletion", id)
	}
	delete(r.cakes, id)
	return nil
}
