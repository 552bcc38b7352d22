package repositories

import (
	"context"
	"errors"
	"fmt"

	"storeapi/internal/models"

	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// GetAll retrieves all stores in insertion order.
func (r *GORMStoreRepository) GetAll(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).Order("id").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", err)
	}
	return stores, nil
}

// GetByName retrieves the first store with the given name.
func (r *GORMStoreRepository) GetByName(ctx context.Context, name string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by name %s: %w", name, err)
	}
	return &store, nil
}

// GetByID retrieves a single store by its ID.
func (r *GORMStoreRepository) GetByID(ctx context.Context, id uint) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %d: %w", id, err)
	}
	return &store, nil
}

// Create inserts a new store. The generated ID is written back to store.
func (r *GORMStoreRepository) Create(ctx context.Context, store *models.Store) error {
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// DeleteByName deletes the stores with the given name. Items are left in place.
func (r *GORMStoreRepository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Store{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete store: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store with name %s for deletion: %w", name, ErrNotFound)
	}
	return nil
}
