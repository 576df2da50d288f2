package api

import "github.com/meseriasii/meseriasii/repository"

// MessageResponse is the generic status body used across the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned from POST /auth/login.
type LoginResponse struct {
	Token string          `json:"token"`
	User  repository.User `json:"user"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	User     repository.User `json:"user"`
	Password string          `json:"password"`
}

// RegisterResponse is returned from POST /auth/register.
type RegisterResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest is the JSON body for POST /auth/change-password.
type ChangePasswordRequest struct {
	UserID      string `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UserResponse wraps a single user profile.
type UserResponse struct {
	User repository.User `json:"user"`
}

// OffersResponse wraps a list of resolved offers.
type OffersResponse struct {
	Offers []repository.Offer `json:"offers"`
}

// DeleteOfferRequest is the JSON body for DELETE /offers.
type DeleteOfferRequest struct {
	OfferID string `json:"offer_id"`
}

// CategoriesResponse wraps the category list.
type CategoriesResponse struct {
	Categories []repository.Category `json:"categories"`
}

// ReviewsResponse wraps a list of resolved reviews.
type ReviewsResponse struct {
	Reviews []repository.Review `json:"reviews"`
}

// AddReviewRequest is the JSON body for POST /reviews. The meserias and
// user fields carry document IDs.
type AddReviewRequest struct {
	Meserias string `json:"meserias"`
	Stars    int    `json:"stars"`
	Text     string `json:"text"`
	User     string `json:"user"`
}

// AddReviewResponse is returned from POST /reviews.
type AddReviewResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// AverageReviewResponse is returned from GET /reviews/average/{id}.
type AverageReviewResponse struct {
	AverageReview float64 `json:"averageReview"`
}
