package database_test

import (
	"testing"

	"storeapi/internal/config"
	"storeapi/internal/database"
	"storeapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteMigratesSchema(t *testing.T) {
	db, err := database.Open(config.Database{Driver: "sqlite", DSN: "file::memory:", LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	for _, model := range []interface{}{&models.User{}, &models.Store{}, &models.Item{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "idx_users_username"))
}

func TestOpenRejectsMemoryDriver(t *testing.T) {
	_, err := database.Open(config.Database{Driver: "memory"})
	assert.Error(t, err)
}
