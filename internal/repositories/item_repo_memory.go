package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"storeapi/internal/models"
)

// MemoryItemRepository is an in-memory implementation of ItemRepository.
type MemoryItemRepository struct {
	items  map[uint]models.Item
	nextID uint
	mu     sync.RWMutex
}

// NewMemoryItemRepository creates a new instance of MemoryItemRepository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items:  make(map[uint]models.Item),
		nextID: 1,
	}
}

// filter returns the items accepted by keep, ordered by ID.
func (r *MemoryItemRepository) filter(keep func(models.Item) bool) []models.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			itemList = append(itemList, item)
		}
	}
	sort.Slice(itemList, func(i, j int) bool { return itemList[i].ID < itemList[j].ID })
	return itemList
}

// GetAll returns all items ordered by ID.
func (r *MemoryItemRepository) GetAll(_ context.Context) ([]models.Item, error) {
	return r.filter(func(models.Item) bool { return true }), nil
}

// GetByName returns the oldest item with the given name.
func (r *MemoryItemRepository) GetByName(_ context.Context, name string) (*models.Item, error) {
	matches := r.filter(func(item models.Item) bool { return item.Name == name })
	if len(matches) == 0 {
		return nil, fmt.Errorf("item with name %s: %w", name, ErrNotFound)
	}
	return &matches[0], nil
}

// GetByStoreID returns the items of a store in insertion order.
func (r *MemoryItemRepository) GetByStoreID(_ context.Context, storeID uint) ([]models.Item, error) {
	return r.filter(func(item models.Item) bool { return item.StoreID == storeID }), nil
}

// Create adds a new item and assigns its ID.
func (r *MemoryItemRepository) Create(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == 0 {
		item.ID = r.nextID
	}
	if item.ID >= r.nextID {
		r.nextID = item.ID + 1
	}
	r.items[item.ID] = *item
	return nil
}

// Update replaces an existing item.
func (r *MemoryItemRepository) Update(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("item with ID %d for update: %w", item.ID, ErrNotFound)
	}
	r.items[item.ID] = *item
	return nil
}

// DeleteByName removes every item with the given name.
func (r *MemoryItemRepository) DeleteByName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, item := range r.items {
		if item.Name == name {
			delete(r.items, id)
			deleted++
		}
	}
	if deleted == 0 {
		return fmt.Errorf("item with name %s for deletion: %w", name, ErrNotFound)
	}
	return nil
}
