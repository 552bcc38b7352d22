package repositories

import (
	"context"

	"storeapi/internal/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	GetAll(ctx context.Context) ([]models.Store, error)
	GetByName(ctx context.Context, name string) (*models.Store, error)
	GetByID(ctx context.Context, id uint) (*models.Store, error)
	Create(ctx context.Context, store *models.Store) error
	DeleteByName(ctx context.Context, name string) error
}
