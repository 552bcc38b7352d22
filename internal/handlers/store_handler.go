package handlers

import (
	"errors"
	"fmt"
	"log"

	"storeapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service *services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service: service,
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/stores", h.HandleListStores)
	router.Get("/store/:name", h.HandleGetStore)
	router.Post("/store/:name", h.HandleCreateStore)
	router.Delete("/store/:name", h.HandleDeleteStore)
}

// HandleListStores returns every store with its items.
func (h *StoreHandler) HandleListStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(c.UserContext())
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		return message(c, fiber.StatusInternalServerError, "An error occurred listing the stores.")
	}
	return c.JSON(fiber.Map{
		"stores": stores,
	})
}

// HandleGetStore returns a single store by name.
func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	name := c.Params("name")
	store, err := h.service.GetStore(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return message(c, fiber.StatusNotFound, "Store not found")
		}
		log.Printf("Error getting store %s: %v", name, err)
		return message(c, fiber.StatusInternalServerError, "An error occurred retrieving the store.")
	}
	return c.JSON(store)
}

// HandleCreateStore creates a store named after the path.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	name := c.Params("name")
	store, err := h.service.CreateStore(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, services.ErrStoreExists) {
			return message(c, fiber.StatusBadRequest, fmt.Sprintf("A store with name '%s' already exists.", name))
		}
		log.Printf("Error creating store %s: %v", name, err)
		return message(c, fiber.StatusInternalServerError, "An error occurred creating the store.")
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleDeleteStore deletes a store by name. Missing stores are not an error.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.DeleteStore(c.UserContext(), name); err != nil {
		log.Printf("Error deleting store %s: %v", name, err)
		return message(c, fiber.StatusInternalServerError, "An error occurred deleting the store.")
	}
	return message(c, fiber.StatusOK, "Store deleted")
}
