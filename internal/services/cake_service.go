package services

import (
	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
)

// CakeService handles business logic related to the cake catalog.
type CakeService struct {
	repo repositories.CakeRepository
}

// NewCakeService creates a new CakeService.
func NewCakeService(repo repositories.CakeRepository) *CakeService {
	return &CakeService{
		repo: repo,
	}
}

// GetAllCakes retrieves all cakes.
func (s *CakeService) GetAllCakes() ([]models.Cake, error) {
	return s.repo.GetAll()
}

// SearchCakes retrieves the cakes passing both the category filter and
// the text query. "All" or an empty category matches everything; a
// blank query matches everything; the two filters combine with AND.
func (s *CakeService) SearchCakes(category, query string) ([]models.Cake, error) {
	cakes, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Cake, 0, len(cakes))
	for _, c := range cakes {
		if models.MatchesCategory(c.Category, category) &&
			models.MatchesQuery(query, c.Name, c.Category) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// GetCakeByID retrieves a single cake by its ID.
func (s *CakeService) GetCakeByID(id string) (*models.Cake, error) {
	return s.repo.GetByID(id)
}

// CreateCake creates a new cake.
func (s *CakeService) CreateCake(cake *models.Cake) error {
	if cake.Status == "" {
		cake.Status = models.StatusAvailable
	}
	return s.repo.Create(cake)
}

// UpdateCake updates an existing cake.
func (s *CakeService) UpdateCake(cake *models.Cake) error {
	return s.repo.Update(cake)
}

// DeleteCake deletes a cake by its ID.
func (s *CakeService) DeleteCake(id string) error {
	return s.repo.Delete(id)
}
