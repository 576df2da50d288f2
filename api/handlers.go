package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meseriasii/meseriasii/repository"
)

// GetUser handles GET /users/{id}.
func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := a.users.GetByID(id)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Could not get user! Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: user})
}

// UpdateUser handles PUT /users. The body is the full user profile.
func (a *API) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := decodeJSON[repository.User](w, r)
	if !ok {
		return
	}
	if user.ID == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	updated, err := a.users.Update(user)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not update user! Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{User: updated})
}

// ListOffers handles GET /offers.
func (a *API) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := a.offers.List()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not fetch offers! Please try again later.")
		return
	}
	if len(offers) == 0 {
		writeMessage(w, http.StatusNotFound, "No offers found for the specified category.")
		return
	}
	writeJSON(w, http.StatusOK, OffersResponse{Offers: offers})
}

// MeseriasOffers handles GET /offers/meserias/{id}.
func (a *API) MeseriasOffers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	offers, err := a.offers.ByMeserias(id)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Could not get offers! Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, OffersResponse{Offers: offers})
}

// OffersByCategory handles GET /offers/category/{categoryName}.
func (a *API) OffersByCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "categoryName")
	offers, err := a.offers.ByCategoryName(name)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not fetch offers! Please try again later.")
		return
	}
	if len(offers) == 0 {
		writeMessage(w, http.StatusNotFound, "No offers found for the specified category.")
		return
	}
	writeJSON(w, http.StatusOK, OffersResponse{Offers: offers})
}

// FilterOffers handles GET /offers/filter. Both query parameters are
// optional; an empty filter returns every offer.
func (a *API) FilterOffers(w http.ResponseWriter, r *http.Request) {
	filters := repository.OfferFilters{
		County:       r.URL.Query().Get("county"),
		CategoryName: r.URL.Query().Get("category_name"),
	}
	offers, err := a.offers.Filter(filters)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not filter offers! Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, OffersResponse{Offers: offers})
}

// AddOffer handles POST /offers.
func (a *API) AddOffer(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[repository.OfferRequest](w, r)
	if !ok {
		return
	}
	if req.MeseriasID == "" || req.CategoryID == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := a.offers.Add(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not add offer! Please try again later.")
		return
	}
	writeMessage(w, http.StatusOK, "Offer added")
}

// UpdateOffer handles PUT /offers.
func (a *API) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[repository.OfferRequest](w, r)
	if !ok {
		return
	}
	if req.ID == "" || req.MeseriasID == "" || req.CategoryID == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := a.offers.Update(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not update offer! Please try again later.")
		return
	}
	writeMessage(w, http.StatusOK, "Offer updated")
}

// DeleteOffer handles DELETE /offers. The target comes in the body, not
// the path, matching the existing client.
func (a *API) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[DeleteOfferRequest](w, r)
	if !ok {
		return
	}
	if req.OfferID == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := a.offers.Delete(req.OfferID); err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not delete offer! Please try again later.")
		return
	}
	writeMessage(w, http.StatusOK, "Offer deleted")
}

// ListCategories handles GET /categories.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.List()
	if err != nil || len(categories) == 0 {
		writeMessage(w, http.StatusNotFound, "Could not get categories! Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}

// ListReviews handles GET /reviews.
func (a *API) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := a.reviews.List()
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not fetch reviews! Please try again later.")
		return
	}
	if len(reviews) == 0 {
		writeMessage(w, http.StatusNotFound, "No reviews found!")
		return
	}
	writeJSON(w, http.StatusOK, ReviewsResponse{Reviews: reviews})
}

// AverageReview handles GET /reviews/average/{id}. A meserias without
// reviews averages to 0.
func (a *API) AverageReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	average, err := a.reviews.AverageFor(id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not fetch the average review! Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, AverageReviewResponse{AverageReview: average})
}

// AddReview handles POST /reviews.
func (a *API) AddReview(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[AddReviewRequest](w, r)
	if !ok {
		return
	}
	if req.Meserias == "" || req.User == "" || req.Stars == 0 || req.Text == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request. All fields are required.")
		return
	}
	id, err := a.reviews.Add(req.Meserias, req.User, req.Stars, req.Text)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not add the review! Please try again later.")
		return
	}
	writeJSON(w, http.StatusCreated, AddReviewResponse{Message: "Review added successfully!", ID: id})
}
