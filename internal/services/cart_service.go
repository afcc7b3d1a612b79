package services

import (
	"fmt"

	"bakeshop/internal/models"
	"bakeshop/internal/repositories"
)

// CartService handles the cart embedded in the user record. All
// mutations go through UserRepository.MutateCart so the read of the
// current cart and the write of the updated cart happen as one logical
// step.
type CartService struct {
	userRepo repositories.UserRepository
	cakeRepo repositories.CakeRepository
}

// NewCartService creates a new CartService.
func NewCartService(userRepo repositories.UserRepository, cakeRepo repositories.CakeRepository) *CartService {
	return &CartService{
		userRepo: userRepo,
		cakeRepo: cakeRepo,
	}
}

// GetCart returns the user's current cart lines and total price.
func (s *CartService) GetCart(userID string) ([]models.CartLine, float64, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, 0, err
	}
	return user.Cart, models.CartTotal(user.Cart), nil
}

// AddItem resolves the cake and chosen variant, then reconciles the new
// line into the cart: an existing line with the same cake and variant
// label accumulates quantity, otherwise the line is appended. The unit
// price is taken from the catalog at add time, not from the request.
func (s *CartService) AddItem(userID, cakeID, variantLabel string, quantity int) ([]models.CartLine, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	cake, err := s.cakeRepo.GetByID(cakeID)
	if err != nil {
		return nil, fmt.Errorf("cake %s not found: %w", cakeID, err)
	}
	if !cake.Available() {
		return nil, fmt.Errorf("cake %s is not available", cake.Name)
	}

	line := models.CartLine{
		CakeID:   cake.ID,
		Name:     cake.Name,
		Image:    cake.Thumbnail(),
		Price:    cake.Price,
		Quantity: quantity,
	}
	if variantLabel != "" {
		variant, ok := findVariant(cake.Variants, variantLabel)
		if !ok {
			return nil, fmt.Errorf("cake %s has no variant %q", cake.Name, variantLabel)
		}
		line.Price = variant.Price
		line.Variant = &models.OrderVariant{Label: variant.Label, Price: variant.Price}
	}

	return s.userRepo.MutateCart(userID, func(cart []models.CartLine) []models.CartLine {
		return models.MergeLine(cart, line)
	})
}

func findVariant(variants []models.CakeVariant, label string) (models.CakeVariant, bool) {
	for _, v := range variants {
		if v.Label == label {
			return v, true
		}
	}
	return models.CakeVariant{}, false
}

// IncreaseItem increments the quantity of the line at index by one.
func (s *CartService) IncreaseItem(userID string, index int) ([]models.CartLine, error) {
	return s.userRepo.MutateCart(userID, func(cart []models.CartLine) []models.CartLine {
		return models.IncreaseLine(cart, index)
	})
}

// DecreaseItem decrements the quantity of the line at index by one.
// A line already at quantity 1 is left unchanged.
func (s *CartService) DecreaseItem(userID string, index int) ([]models.CartLine, error) {
	return s.userRepo.MutateCart(userID, func(cart []models.CartLine) []models.CartLine {
		return models.DecreaseLine(cart, index)
	})
}

// RemoveItem deletes the line at index regardless of its quantity.
func (s *CartService) RemoveItem(userID string, index int) ([]models.CartLine, error) {
	return s.userRepo.MutateCart(userID, func(cart []models.CartLine) []models.CartLine {
		return models.RemoveLine(cart, index)
	})
}
