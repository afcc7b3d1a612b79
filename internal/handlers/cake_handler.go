package handlers

import (
	"log"
	"strings"

	"bakeshop/internal/models"
	"bakeshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CakeHandler handles HTTP requests for the cake catalog.
type CakeHandler struct {
	service  *services.CakeService
	validate *validator.Validate
}

// NewCakeHandler creates a new CakeHandler.
func NewCakeHandler(service *services.CakeService) *CakeHandler {
	return &CakeHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the storefront (read-only) cake routes.
func (h *CakeHandler) RegisterPublicRoutes(router fiber.Router) {
	cakeRoutes := router.Group("/cakes")
	cakeRoutes.Get("/", h.HandleGetCakes)
	cakeRoutes.Get("/:id", h.HandleGetCakeByID)
}

// RegisterAdminRoutes registers the write-side cake routes.
func (h *CakeHandler) RegisterAdminRoutes(router fiber.Router) {
	cakeRoutes := router.Group("/cakes")
	cakeRoutes.Post("/", h.HandleCreateCake)
	cakeRoutes.Put("/:id", h.HandleUpdateCake)
	cakeRoutes.Delete("/:id", h.HandleDeleteCake)
}

// HandleGetCakes lists cakes, optionally filtered by ?category= and
// ?q= (both filters must pass).
func (h *CakeHandler) HandleGetCakes(c *fiber.Ctx) error {
	category := c.Query("category")
	query := c.Query("q")

	cakes, err := h.service.SearchCakes(category, query)
	if err != nil {
		log.Printf("Error getting cakes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cakes",
			"error":   err.Error(),
		})
	}
	return c.JSON(cakes)
}

// HandleGetCakeByID retrieves a single cake by its ID.
func (h *CakeHandler) HandleGetCakeByID(c *fiber.Ctx) error {
	cakeID := c.Params("id")
	cake, err := h.service.GetCakeByID(cakeID)
	if err != nil {
		log.Printf("Error getting cake by ID %s: %v", cakeID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cake not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cake",
			"error":   err.Error(),
		})
	}
	return c.JSON(cake)
}

// HandleCreateCake creates a new cake.
func (h *CakeHandler) HandleCreateCake(c *fiber.Ctx) error {
	var cake models.Cake
	if err := c.BodyParser(&cake); err != nil {
		log.Printf("Error parsing cake request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(cake); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateCake(&cake); err != nil {
		log.Printf("Error creating cake: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create cake",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cake)
}

// HandleUpdateCake updates an existing cake.
func (h *CakeHandler) HandleUpdateCake(c *fiber.Ctx) error {
	var cake models.Cake
	if err := c.BodyParser(&cake); err != nil {
		log.Printf("Error parsing cake request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	cake.ID = c.Params("id")

	if err := h.validate.Struct(cake); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.UpdateCake(&cake); err != nil {
		log.Printf("Error updating cake %s: %v", cake.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cake not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cake",
			"error":   err.Error(),
		})
	}
	return c.JSON(cake)
}

// HandleDeleteCake deletes a cake by its ID.
func (h *CakeHandler) HandleDeleteCake(c *fiber.Ctx) error {
	cakeID := c.Params("id")
	if err := h.service.DeleteCake(cakeID); err != nil {
		log.Printf("Error deleting cake %s: %v", cakeID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cake not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete cake",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cake deleted successfully",
	})
}
