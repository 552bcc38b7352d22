package models

// Item represents an item sold by a store.
// ID is internal; callers address items by name.
type Item struct {
	ID      uint    `json:"-" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"type:varchar(80);index"`
	Price   float64 `json:"price" gorm:"type:double precision;not null"`
	StoreID uint    `json:"-" gorm:"index;not null"` // references stores.id
}

// ItemResponse is the public JSON shape of an item.
type ItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewItem builds an unsaved item.
func NewItem(name string, price float64, storeID uint) *Item {
	return &Item{Name: name, Price: price, StoreID: storeID}
}

// JSON returns the public view of the item. store_id is never exposed.
func (i *Item) JSON() ItemResponse {
	return ItemResponse{Name: i.Name, Price: i.Price}
}
