package repository

import (
	"encoding/json"

	"github.com/meseriasii/meseriasii/storage"
)

// Categories reads the service categories.
type Categories struct {
	store storage.Store
}

// NewCategories creates a category repository over the given store.
func NewCategories(store storage.Store) *Categories {
	return &Categories{store: store}
}

// List returns every category.
func (c *Categories) List() ([]Category, error) {
	var categories []Category
	err := c.store.ForEach(categoriesCollection, func(id string, data []byte) error {
		var cat Category
		if err := json.Unmarshal(data, &cat); err != nil {
			return err
		}
		cat.ID = id
		categories = append(categories, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Add stores a new category and returns its ID. Used by seeding.
func (c *Categories) Add(name string) (string, error) {
	return c.store.Add(categoriesCollection, Category{Name: name})
}
