// Package repository implements the marketplace repositories over a
// document store: users, offers, categories, and reviews. Offers and
// reviews hold references (document IDs) to users and categories; read
// paths resolve those references into the full documents before returning.
package repository

import "errors"

// Collection names in the document store. The reviews collection keeps
// its historical singular name.
const (
	usersCollection      = "users"
	offersCollection     = "offers"
	categoriesCollection = "categories"
	reviewsCollection    = "review"
)

var (
	// ErrInvalidCredentials is returned by Login and ChangePassword when
	// the supplied password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned by Register when the username is in use.
	ErrUsernameTaken = errors.New("username already taken")
)

// User is the public profile of a customer or meserias. The password hash
// lives only in the stored document, never on this type.
type User struct {
	ID          string `json:"id,omitempty"`
	Username    string `json:"username"`
	Type        string `json:"type"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Date        string `json:"date"`
	Version     int    `json:"version"`
	County      string `json:"county"`
}

// userDocument is the stored form of a user: the profile plus the bcrypt
// password hash. The ID is the document key, not a field.
type userDocument struct {
	User
	Password string `json:"password"`
}

// Category is a service category. The JSON key for the name is capitalized
// for compatibility with the existing documents and client.
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"Name"`
}

// Offer is a service listing with its references resolved.
type Offer struct {
	ID          string   `json:"id,omitempty"`
	Meserias    User     `json:"meserias"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	StartPrice  float64  `json:"start_price"`
}

// OfferRequest is the write-side shape of an offer: references are plain
// document IDs.
type OfferRequest struct {
	ID          string  `json:"id,omitempty"`
	MeseriasID  string  `json:"meserias_id"`
	CategoryID  string  `json:"category_id"`
	Description string  `json:"description"`
	StartPrice  float64 `json:"start_price"`
}

// offerDocument is the stored form of an offer.
type offerDocument struct {
	Meserias    string  `json:"meserias"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	StartPrice  float64 `json:"start_price"`
}

// OfferFilters narrows offer listings; empty fields match everything.
type OfferFilters struct {
	County       string `json:"county,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// Review is a customer review of a meserias with its references resolved.
type Review struct {
	ID       string `json:"id,omitempty"`
	Meserias User   `json:"meserias"`
	User     User   `json:"user"`
	Stars    int    `json:"stars"`
	Text     string `json:"text"`
}

// reviewDocument is the stored form of a review.
type reviewDocument struct {
	Meserias string `json:"meserias"`
	User     string `json:"user"`
	Stars    int    `json:"stars"`
	Text     string `json:"text"`
}
