package services

import (
	"context"
	"errors"
	"fmt"

	"storeapi/internal/models"
	"storeapi/internal/repositories"
)

// StoreService handles business logic related to stores.
type StoreService struct {
	stores repositories.StoreRepository
	items  repositories.ItemRepository
	events EventPublisher
}

// NewStoreService creates a new StoreService. events may be nil.
func NewStoreService(stores repositories.StoreRepository, items repositories.ItemRepository, events EventPublisher) *StoreService {
	return &StoreService{
		stores: stores,
		items:  items,
		events: events,
	}
}

// ListStores returns every store with its items.
func (s *StoreService) ListStores(ctx context.Context) ([]models.StoreResponse, error) {
	stores, err := s.stores.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]models.StoreResponse, 0, len(stores))
	for i := range stores {
		view, err := s.render(ctx, &stores[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, view)
	}
	return resp, nil
}

// GetStore returns the named store with its items.
func (s *StoreService) GetStore(ctx context.Context, name string) (*models.StoreResponse, error) {
	store, err := s.stores.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("store %s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	view, err := s.render(ctx, store)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateStore creates a store unless one with the same name exists.
func (s *StoreService) CreateStore(ctx context.Context, name string) (*models.StoreResponse, error) {
	if _, err := s.stores.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("store '%s': %w", name, ErrStoreExists)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	store := models.NewStore(name)
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	publish(s.events, EventStoreCreated, store.Name, store.ID, nil)

	view := store.JSON(nil)
	return &view, nil
}

// DeleteStore deletes the named store. Deleting a missing store succeeds,
// and the store's items are kept.
func (s *StoreService) DeleteStore(ctx context.Context, name string) error {
	if err := s.stores.DeleteByName(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}
	publish(s.events, EventStoreDeleted, name, 0, nil)
	return nil
}

// render loads the store's items on demand.
func (s *StoreService) render(ctx context.Context, store *models.Store) (models.StoreResponse, error) {
	items, err := s.items.GetByStoreID(ctx, store.ID)
	if err != nil {
		return models.StoreResponse{}, err
	}
	return store.JSON(items), nil
}
