package models_test

import (
	"encoding/json"
	"sync"
	"testing"

	"storeapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestNewUser(t *testing.T) {
	user := models.NewUser("test username", "test password")

	assert.Equal(t, "test username", user.Username)
	assert.Equal(t, "test password", user.Password)
	assert.Zero(t, user.ID)
}

func TestUserPasswordIsNotSerialized(t *testing.T) {
	body, err := json.Marshal(models.NewUser("test", "1234"))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "1234")
	assert.NotContains(t, string(body), "password")
}

func TestNewItem(t *testing.T) {
	item := models.NewItem("test", 19.99, 1)

	assert.Equal(t, "test", item.Name)
	assert.Equal(t, 19.99, item.Price)
	assert.Equal(t, uint(1), item.StoreID)
	assert.Zero(t, item.ID)
}

func TestItemJSON(t *testing.T) {
	item := models.NewItem("test", 19.99, 1)

	assert.Equal(t, models.ItemResponse{Name: "test", Price: 19.99}, item.JSON())

	body, err := json.Marshal(item.JSON())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test","price":19.99}`, string(body))
}

func TestNewStore(t *testing.T) {
	store := models.NewStore("test store")

	assert.Equal(t, "test store", store.Name)
	assert.Zero(t, store.ID)
}

func TestStoreJSONNoItems(t *testing.T) {
	store := models.NewStore("test")

	body, err := json.Marshal(store.JSON(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"test","items":[]}`, string(body))
}

func TestStoreJSONWithItems(t *testing.T) {
	store := models.NewStore("test")
	items := []models.Item{
		*models.NewItem("test item", 100, 1),
		*models.NewItem("other item", 2.5, 1),
	}

	resp := store.JSON(items)

	assert.Equal(t, "test", resp.Name)
	assert.Equal(t, []models.ItemResponse{
		{Name: "test item", Price: 100},
		{Name: "other item", Price: 2.5},
	}, resp.Items)
}

func TestItemPriceColumnIsFloat(t *testing.T) {
	s, err := schema.Parse(&models.Item{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	price := s.LookUpField("price")
	require.NotNil(t, price)
	// A fixed-scale numeric column would round prices like 10.555 on postgres.
	assert.Equal(t, schema.DataType("double precision"), price.DataType)
	assert.True(t, price.NotNull)
}
