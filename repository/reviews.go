package repository

import (
	"encoding/json"
	"fmt"

	"github.com/meseriasii/meseriasii/storage"
)

// Reviews persists customer reviews of meserias. Stored reviews reference
// the reviewer and the reviewed meserias by user document ID.
type Reviews struct {
	store storage.Store
	users *Users
}

// NewReviews creates a review repository over the given store.
func NewReviews(store storage.Store) *Reviews {
	return &Reviews{store: store, users: NewUsers(store)}
}

// List returns every review with both user references resolved.
func (r *Reviews) List() ([]Review, error) {
	var reviews []Review
	err := r.store.ForEach(reviewsCollection, func(id string, data []byte) error {
		var doc reviewDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		meserias, err := r.users.GetByID(doc.Meserias)
		if err != nil {
			return fmt.Errorf("resolving meserias: %w", err)
		}
		user, err := r.users.GetByID(doc.User)
		if err != nil {
			return fmt.Errorf("resolving user: %w", err)
		}
		reviews = append(reviews, Review{
			ID:       id,
			Meserias: meserias,
			User:     user,
			Stars:    doc.Stars,
			Text:     doc.Text,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Add stores a new review for the given meserias and returns its ID.
// The meserias must exist.
func (r *Reviews) Add(meseriasID, userID string, stars int, text string) (string, error) {
	if _, err := r.users.GetByID(meseriasID); err != nil {
		return "", fmt.Errorf("resolving meserias: %w", err)
	}
	return r.store.Add(reviewsCollection, reviewDocument{
		Meserias: meseriasID,
		User:     userID,
		Stars:    stars,
		Text:     text,
	})
}

// AverageFor computes the mean star rating for a meserias. Returns 0 when
// the meserias has no reviews.
func (r *Reviews) AverageFor(meseriasID string) (float64, error) {
	total, count := 0, 0
	err := r.store.ForEach(reviewsCollection, func(id string, data []byte) error {
		var doc reviewDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		if doc.Meserias == meseriasID {
			total += doc.Stars
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, nil
	}
	return float64(total) / float64(count), nil
}
