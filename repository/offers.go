package repository

import (
	"encoding/json"
	"fmt"

	"github.com/meseriasii/meseriasii/storage"
)

// Offers persists service listings. Stored offers reference their meserias
// and category by document ID; every read path resolves those references.
type Offers struct {
	store storage.Store
}

// NewOffers creates an offer repository over the given store.
func NewOffers(store storage.Store) *Offers {
	return &Offers{store: store}
}

func (o *Offers) resolveUser(id string) (User, error) {
	var doc userDocument
	if err := o.store.Get(usersCollection, id, &doc); err != nil {
		return User{}, fmt.Errorf("resolving meserias: %w", err)
	}
	user := doc.User
	user.ID = id
	return user, nil
}

func (o *Offers) resolveCategory(id string) (Category, error) {
	var cat Category
	if err := o.store.Get(categoriesCollection, id, &cat); err != nil {
		return Category{}, fmt.Errorf("resolving category: %w", err)
	}
	cat.ID = id
	return cat, nil
}

func (o *Offers) resolve(id string, doc offerDocument) (Offer, error) {
	meserias, err := o.resolveUser(doc.Meserias)
	if err != nil {
		return Offer{}, err
	}
	category, err := o.resolveCategory(doc.Category)
	if err != nil {
		return Offer{}, err
	}
	return Offer{
		ID:          id,
		Meserias:    meserias,
		Category:    category,
		Description: doc.Description,
		StartPrice:  doc.StartPrice,
	}, nil
}

// List returns every offer with references resolved.
func (o *Offers) List() ([]Offer, error) {
	var offers []Offer
	err := o.store.ForEach(offersCollection, func(id string, data []byte) error {
		var doc offerDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		offer, err := o.resolve(id, doc)
		if err != nil {
			return err
		}
		offers = append(offers, offer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// ByMeserias returns the offers of one meserias. The meserias must exist.
func (o *Offers) ByMeserias(meseriasID string) ([]Offer, error) {
	meserias, err := o.resolveUser(meseriasID)
	if err != nil {
		return nil, err
	}

	var offers []Offer
	err = o.store.ForEach(offersCollection, func(id string, data []byte) error {
		var doc offerDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.Meserias != meseriasID {
			return nil
		}
		category, err := o.resolveCategory(doc.Category)
		if err != nil {
			return err
		}
		offers = append(offers, Offer{
			ID:          id,
			Meserias:    meserias,
			Category:    category,
			Description: doc.Description,
			StartPrice:  doc.StartPrice,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// ByCategoryName returns the offers in the category with the given name.
// Name matching is exact, as stored.
func (o *Offers) ByCategoryName(name string) ([]Offer, error) {
	categories := NewCategories(o.store)
	all, err := categories.List()
	if err != nil {
		return nil, err
	}
	var category Category
	found := false
	for _, cat := range all {
		if cat.Name == name {
			category = cat
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("category %s: %w", name, storage.ErrNotFound)
	}

	var offers []Offer
	err = o.store.ForEach(offersCollection, func(id string, data []byte) error {
		var doc offerDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.Category != category.ID {
			return nil
		}
		meserias, err := o.resolveUser(doc.Meserias)
		if err != nil {
			return err
		}
		offers = append(offers, Offer{
			ID:          id,
			Meserias:    meserias,
			Category:    category,
			Description: doc.Description,
			StartPrice:  doc.StartPrice,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offers, nil
}

// Filter returns the offers matching the given filters. Empty filter
// fields match every offer.
func (o *Offers) Filter(filters OfferFilters) ([]Offer, error) {
	all, err := o.List()
	if err != nil {
		return nil, err
	}
	var offers []Offer
	for _, offer := range all {
		if filters.County != "" && filters.County != offer.Meserias.County {
			continue
		}
		if filters.CategoryName != "" && filters.CategoryName != offer.Category.Name {
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// checkRefs verifies the meserias and category an offer points at exist.
func (o *Offers) checkRefs(req OfferRequest) error {
	if _, err := o.resolveUser(req.MeseriasID); err != nil {
		return err
	}
	if _, err := o.resolveCategory(req.CategoryID); err != nil {
		return err
	}
	return nil
}

// Add stores a new offer after validating its references.
func (o *Offers) Add(req OfferRequest) error {
	if err := o.checkRefs(req); err != nil {
		return err
	}
	_, err := o.store.Add(offersCollection, offerDocument{
		Meserias:    req.MeseriasID,
		Category:    req.CategoryID,
		Description: req.Description,
		StartPrice:  req.StartPrice,
	})
	return err
}

// Update replaces an existing offer after validating its references.
func (o *Offers) Update(req OfferRequest) error {
	var existing offerDocument
	if err := o.store.Get(offersCollection, req.ID, &existing); err != nil {
		return err
	}
	if err := o.checkRefs(req); err != nil {
		return err
	}
	return o.store.Put(offersCollection, req.ID, offerDocument{
		Meserias:    req.MeseriasID,
		Category:    req.CategoryID,
		Description: req.Description,
		StartPrice:  req.StartPrice,
	})
}

// Delete removes an offer.
func (o *Offers) Delete(offerID string) error {
	return o.store.Delete(offersCollection, offerID)
}
