package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"storeapi/internal/models"
)

// MemoryStoreRepository is an in-memory implementation of StoreRepository.
type MemoryStoreRepository struct {
	stores map[uint]models.Store
	nextID uint
	mu     sync.RWMutex
}

// NewMemoryStoreRepository creates a new instance of MemoryStoreRepository.
func NewMemoryStoreRepository() *MemoryStoreRepository {
	return &MemoryStoreRepository{
		stores: make(map[uint]models.Store),
		nextID: 1,
	}
}

// GetAll returns all stores ordered by ID.
func (r *MemoryStoreRepository) GetAll(_ context.Context) ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	storeList := make([]models.Store, 0, len(r.stores))
	for _, s := range r.stores {
		storeList = append(storeList, s)
	}
	sort.Slice(storeList, func(i, j int) bool { return storeList[i].ID < storeList[j].ID })
	return storeList, nil
}

// GetByName returns the oldest store with the given name.
func (r *MemoryStoreRepository) GetByName(ctx context.Context, name string) (*models.Store, error) {
	stores, _ := r.GetAll(ctx)
	for i := range stores {
		if stores[i].Name == name {
			return &stores[i], nil
		}
	}
	return nil, fmt.Errorf("store with name %s: %w", name, ErrNotFound)
}

// GetByID returns a store by its ID.
func (r *MemoryStoreRepository) GetByID(_ context.Context, id uint) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, fmt.Errorf("store with ID %d: %w", id, ErrNotFound)
	}
	return &store, nil
}

// Create adds a new store and assigns its ID.
func (r *MemoryStoreRepository) Create(_ context.Context, store *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == 0 {
		store.ID = r.nextID
	}
	if store.ID >= r.nextID {
		r.nextID = store.ID + 1
	}
	r.stores[store.ID] = *store
	return nil
}

// DeleteByName removes every store with the given name.
func (r *MemoryStoreRepository) DeleteByName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, s := range r.stores {
		if s.Name == name {
			delete(r.stores, id)
			deleted++
		}
	}
	if deleted == 0 {
		return fmt.Errorf("store with name %s for deletion: %w", name, ErrNotFound)
	}
	return nil
}
