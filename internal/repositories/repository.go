package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned (wrapped) by every repository when a lookup
// or a delete matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned (wrapped) when a create violates a unique key.
var ErrDuplicate = errors.New("duplicate key")

// Repositories bundles the data access objects used by the services.
type Repositories struct {
	Stores StoreRepository
	Items  ItemRepository
	Users  UserRepository
}

// NewGORMRepositories returns repositories backed by the given database handle.
func NewGORMRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Stores: NewGORMStoreRepository(db),
		Items:  NewGORMItemRepository(db),
		Users:  NewGORMUserRepository(db),
	}
}

// NewMemoryRepositories returns process-local repositories. Nothing survives a restart.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Stores: NewMemoryStoreRepository(),
		Items:  NewMemoryItemRepository(),
		Users:  NewMemoryUserRepository(),
	}
}
