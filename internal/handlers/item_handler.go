package handlers

import (
	"errors"
	"fmt"
	"log"

	"storeapi/internal/models"
	"storeapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service  *services.ItemService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the item routes. Reading a single item goes through auth.
func (h *ItemHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/items", h.HandleListItems)
	router.Get("/item/:name", auth, h.HandleGetItem)
	router.Post("/item/:name", h.HandleCreateItem)
	router.Put("/item/:name", h.HandlePutItem)
	router.Delete("/item/:name", h.HandleDeleteItem)
}

// ItemRequest is the body of POST and PUT /item/:name.
// Pointers let a zero price through while still catching missing fields.
type ItemRequest struct {
	Price   *float64 `json:"price" validate:"required,gte=0"`
	StoreID *uint    `json:"store_id" validate:"required,gt=0"`
}

// parseItem decodes and validates the body. On failure it returns the message to send back.
func (h *ItemHandler) parseItem(c *fiber.Ctx) (*ItemRequest, string) {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing item request body: %v", err)
		return nil, "Invalid request body"
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, validationMessage(err)
	}
	return &req, ""
}

// HandleListItems returns every item.
func (h *ItemHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.UserContext())
	if err != nil {
		log.Printf("Error listing items: %v", err)
		return message(c, fiber.StatusInternalServerError, "An error occurred listing the items.")
	}
	resp := make([]models.ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].JSON())
	}
	return c.JSON(fiber.Map{
		"items": resp,
	})
}

// HandleGetItem returns a single item by name.
func (h *ItemHandler) HandleGetItem(c *fiber.Ctx) error {
	name := c.Params("name")
	item, err := h.service.GetItem(c.UserContext(), name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return message(c, fiber.StatusNotFound, "Item not found")
		}
		log.Printf("Error getting item %s: %v", name, err)
		return message(c, fiber.StatusInternalServerError, "An error occurred retrieving the item.")
	}
	return c.JSON(item.JSON())
}

// HandleCreateItem creates a new item named after the path.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	name := c.Params("name")
	req, problem := h.parseItem(c)
	if req == nil {
		return message(c, fiber.StatusBadRequest, problem)
	}

	item, err := h.service.CreateItem(c.UserContext(), name, *req.Price, *req.StoreID)
	if err != nil {
		return h.writeError(c, name, *req.StoreID, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item.JSON())
}

// HandlePutItem creates or updates an item.
func (h *ItemHandler) HandlePutItem(c *fiber.Ctx) error {
	name := c.Params("name")
	req, problem := h.parseItem(c)
	if req == nil {
		return message(c, fiber.StatusBadRequest, problem)
	}

	item, _, err := h.service.UpsertItem(c.UserContext(), name, *req.Price, *req.StoreID)
	if err != nil {
		return h.writeError(c, name, *req.StoreID, err)
	}
	return c.JSON(item.JSON())
}

// HandleDeleteItem deletes an item by name. Missing items are not an error.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.service.DeleteItem(c.UserContext(), name); err != nil {
		log.Printf("Error deleting item %s: %v", name, err)
		return message(c, fiber.StatusInternalServerError, "An error occurred deleting the item.")
	}
	return message(c, fiber.StatusOK, "Item deleted")
}

func (h *ItemHandler) writeError(c *fiber.Ctx, name string, storeID uint, err error) error {
	switch {
	case errors.Is(err, services.ErrItemExists):
		return message(c, fiber.StatusBadRequest, fmt.Sprintf("An item with name '%s' already exists.", name))
	case errors.Is(err, services.ErrUnknownStore):
		return message(c, fiber.StatusBadRequest, fmt.Sprintf("Store with id %d does not exist.", storeID))
	}
	log.Printf("Error saving item %s: %v", name, err)
	return message(c, fiber.StatusInternalServerError, "An error occurred inserting the item.")
}
