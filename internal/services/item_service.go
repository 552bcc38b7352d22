package services

import (
	"context"
	"errors"
	"fmt"

	"storeapi/internal/models"
	"storeapi/internal/repositories"
)

// ItemService handles business logic related to items.
type ItemService struct {
	items  repositories.ItemRepository
	stores repositories.StoreRepository
	events EventPublisher
}

// NewItemService creates a new ItemService. events may be nil.
func NewItemService(items repositories.ItemRepository, stores repositories.StoreRepository, events EventPublisher) *ItemService {
	return &ItemService{
		items:  items,
		stores: stores,
		events: events,
	}
}

// ListItems retrieves all items.
func (s *ItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.items.GetAll(ctx)
}

// GetItem retrieves a single item by name.
func (s *ItemService) GetItem(ctx context.Context, name string) (*models.Item, error) {
	item, err := s.items.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("item %s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// CreateItem creates an item unless one with the same name exists.
func (s *ItemService) CreateItem(ctx context.Context, name string, price float64, storeID uint) (*models.Item, error) {
	if _, err := s.items.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("item '%s': %w", name, ErrItemExists)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if err := s.checkStore(ctx, storeID); err != nil {
		return nil, err
	}

	item := models.NewItem(name, price, storeID)
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	publish(s.events, EventItemCreated, item.Name, item.StoreID, &item.Price)
	return item, nil
}

// UpsertItem updates the price and store of an existing item, or creates it.
// The boolean reports whether the item was created.
func (s *ItemService) UpsertItem(ctx context.Context, name string, price float64, storeID uint) (*models.Item, bool, error) {
	if err := s.checkStore(ctx, storeID); err != nil {
		return nil, false, err
	}

	item, err := s.items.GetByName(ctx, name)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		item = models.NewItem(name, price, storeID)
		if err := s.items.Create(ctx, item); err != nil {
			return nil, false, err
		}
		publish(s.events, EventItemCreated, item.Name, item.StoreID, &item.Price)
		return item, true, nil
	case err != nil:
		return nil, false, err
	}

	item.Price = price
	item.StoreID = storeID
	if err := s.items.Update(ctx, item); err != nil {
		return nil, false, err
	}
	publish(s.events, EventItemUpdated, item.Name, item.StoreID, &item.Price)
	return item, false, nil
}

// DeleteItem deletes the named item. Deleting a missing item succeeds.
func (s *ItemService) DeleteItem(ctx context.Context, name string) error {
	if err := s.items.DeleteByName(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	publish(s.events, EventItemDeleted, name, 0, nil)
	return nil
}

// StoreOf resolves the store an item belongs to.
func (s *ItemService) StoreOf(ctx context.Context, item *models.Item) (*models.Store, error) {
	store, err := s.stores.GetByID(ctx, item.StoreID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("store %d of item %s: %w", item.StoreID, item.Name, ErrNotFound)
		}
		return nil, err
	}
	return store, nil
}

func (s *ItemService) checkStore(ctx context.Context, storeID uint) error {
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("store with id %d: %w", storeID, ErrUnknownStore)
		}
		return err
	}
	return nil
}
