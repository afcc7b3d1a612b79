package handlers

import (
	"log"
	"strings"

	"bakeshop/internal/middleware"
	"bakeshop/internal/models"
	"bakeshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. All routes operate on the
// cart of the authenticated user.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Post("/items/:index/increase", h.HandleIncreaseItem)
	cartRoutes.Post("/items/:index/decrease", h.HandleDecreaseItem)
	cartRoutes.Delete("/items/:index", h.HandleRemoveItem)
}

// HandleGetCart returns the cart lines and total price.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	items, total, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(items, total))
}

// AddItemRequest represents a line to reconcile into the cart.
type AddItemRequest struct {
	CakeID   string `json:"cake_id" validate:"required"`
	Variant  string `json:"variant"` // size label, empty for the base cake
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddItem adds an item to the cart, merging quantity into an
// existing line when cake and variant match.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	items, err := h.service.AddItem(userID, req.CakeID, req.Variant, req.Quantity)
	if err != nil {
		log.Printf("Error adding item to cart for user %s: %v", userID, err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "no variant") ||
			strings.Contains(err.Error(), "not available") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not add item to cart",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cartResponse(items, models.CartTotal(items)))
}

// HandleIncreaseItem increments the quantity of the line at index.
func (h *CartHandler) HandleIncreaseItem(c *fiber.Ctx) error {
	return h.mutateByIndex(c, h.service.IncreaseItem)
}

// HandleDecreaseItem decrements the quantity of the line at index,
// never below 1.
func (h *CartHandler) HandleDecreaseItem(c *fiber.Ctx) error {
	return h.mutateByIndex(c, h.service.DecreaseItem)
}

// HandleRemoveItem deletes the line at index.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	return h.mutateByIndex(c, h.service.RemoveItem)
}

func (h *CartHandler) mutateByIndex(c *fiber.Ctx, op func(string, int) ([]models.CartLine, error)) error {
	userID := middleware.UserID(c)
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Line index must be a number",
		})
	}

	items, err := op(userID, index)
	if err != nil {
		log.Printf("Error mutating cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(items, models.CartTotal(items)))
}

func cartResponse(items []models.CartLine, total float64) fiber.Map {
	if items == nil {
		items = []models.CartLine{}
	}
	return fiber.Map{
		"items": items,
		"total": total,
	}
}
