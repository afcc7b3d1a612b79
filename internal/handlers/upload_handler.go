package handlers

import (
	"log"

	"bakeshop/pkg/imagestore"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler forwards image uploads to the external image host and
// returns the public URL. Used by the cake photo, category icon, and
// banner image flows.
type UploadHandler struct {
	store *imagestore.Client
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store *imagestore.Client) *UploadHandler {
	return &UploadHandler{
		store: store,
	}
}

// RegisterRoutes registers the upload route (admin only).
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/uploads", h.HandleUpload)
}

// HandleUpload accepts a multipart "image" file and responds with the
// hosted URL.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An 'image' file is required",
			"error":   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	url, err := h.store.Upload(c.Context(), fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error uploading image %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Image upload failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
