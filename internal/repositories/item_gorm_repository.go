package repositories

import (
	"context"
	"errors"
	"fmt"

	"storeapi/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// GetAll retrieves all items in insertion order.
func (r *GORMItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetByName retrieves the first item with the given name.
func (r *GORMItemRepository) GetByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by name %s: %w", name, err)
	}
	return &item, nil
}

// GetByStoreID returns the items of a store in insertion order.
func (r *GORMItemRepository) GetByStoreID(ctx context.Context, storeID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items of store %d: %w", storeID, err)
	}
	return items, nil
}

// Create inserts a new item.
func (r *GORMItemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update saves every field of an existing item.
func (r *GORMItemRepository) Update(ctx context.Context, item *models.Item) error {
	res := r.db.WithContext(ctx).Save(item) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %d for update: %w", item.ID, ErrNotFound)
	}
	return nil
}

// DeleteByName deletes the items with the given name.
func (r *GORMItemRepository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Item{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with name %s for deletion: %w", name, ErrNotFound)
	}
	return nil
}
