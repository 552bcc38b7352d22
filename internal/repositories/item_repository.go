package repositories

import (
	"context"

	"storeapi/internal/models"
)

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByName(ctx context.Context, name string) (*models.Item, error)
	// GetByStoreID returns the items owned by a store, oldest first.
	GetByStoreID(ctx context.Context, storeID uint) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	DeleteByName(ctx context.Context, name string) error
}
