package handlers

import (
	"log"
	"strings"

	"bakeshop/internal/models"
	"bakeshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for ingredient stock.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the inventory routes (admin only).
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Get("/", h.HandleGetItems)
	inventoryRoutes.Post("/", h.HandleCreateItem)
	inventoryRoutes.Put("/:id", h.HandleUpdateItem)
	inventoryRoutes.Delete("/:id", h.HandleDeleteItem)
	inventoryRoutes.Post("/:id/adjust", h.HandleAdjustStock)
}

// HandleGetItems lists inventory items, optionally filtered by
// ?category= and ?q= (both filters must pass).
func (h *InventoryHandler) HandleGetItems(c *fiber.Ctx) error {
	category := c.Query("category")
	query := c.Query("q")

	items, err := h.service.SearchItems(category, query)
	if err != nil {
		log.Printf("Error getting inventory items: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inventory",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleCreateItem creates a new inventory item.
func (h *InventoryHandler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing inventory request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateItem(&item); err != nil {
		log.Printf("Error creating inventory item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create inventory item",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem updates an existing inventory item.
func (h *InventoryHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var item models.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing inventory request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = c.Params("id")

	if err := h.validate.Struct(item); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateItem(&item); err != nil {
		log.Printf("Error updating inventory item %s: %v", item.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Inventory item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update inventory item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

// AdjustStockRequest represents a stock increment/decrement.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// HandleAdjustStock applies a +/- delta to an item's quantity. The
// low-stock flag is recomputed and stored in the same write.
func (h *InventoryHandler) HandleAdjustStock(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing adjust request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	item, err := h.service.AdjustStock(itemID, req.Delta)
	if err != nil {
		log.Printf("Error adjusting stock for item %s: %v", itemID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Inventory item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not adjust stock",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

// HandleDeleteItem deletes an inventory item by its ID.
func (h *InventoryHandler) HandleDeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.service.DeleteItem(itemID); err != nil {
		log.Printf("Error deleting inventory item %s: %v", itemID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Inventory item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete inventory item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Inventory item deleted successfully",
	})
}
