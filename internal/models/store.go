package models

// Store represents a named store owning zero or more items.
// Store names are kept unique by the service layer, not by the schema.
type Store struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(80);index"`
}

// StoreResponse is the public JSON shape of a store.
type StoreResponse struct {
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

// NewStore builds an unsaved store.
func NewStore(name string) *Store {
	return &Store{Name: name}
}

// JSON shapes the store together with the items that belong to it.
// The items are passed in by the caller so the relationship is only
// loaded when a response is actually being built.
func (s *Store) JSON(items []Item) StoreResponse {
	resp := StoreResponse{
		Name:  s.Name,
		Items: make([]ItemResponse, 0, len(items)),
	}
	for i := range items {
		resp.Items = append(resp.Items, items[i].JSON())
	}
	return resp
}
