package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meseriasii/meseriasii/api"
	"github.com/meseriasii/meseriasii/auth"
	"github.com/meseriasii/meseriasii/repository"
	"github.com/meseriasii/meseriasii/storage/memory"
)

type fixture struct {
	srv        *httptest.Server
	store      *memory.Store
	categoryID string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	tokens, err := auth.NewManager([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	a := api.New(store, tokens, auth.NewRegistry())

	categoryID, err := repository.NewCategories(store).Add("Electrician")
	require.NoError(t, err)

	srv := httptest.NewServer(a.Router())
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, store: store, categoryID: categoryID}
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(context.Background(), method, f.srv.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func profile(username string) repository.User {
	return repository.User{
		Username:    username,
		Type:        "meserias",
		FirstName:   "Ion",
		LastName:    "Popescu",
		PhoneNumber: "0712345678",
		Address:     "Str. Principala 1",
		County:      "Cluj",
	}
}

// registerAndLogin registers a user and logs in, returning the token and
// the stored profile (with its document ID).
func (f *fixture) registerAndLogin(t *testing.T, username string) (string, repository.User) {
	t.Helper()
	resp := f.do(t, http.MethodPost, "/auth/register", "", api.RegisterRequest{
		User:     profile(username),
		Password: "parola123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reg := decode[api.RegisterResponse](t, resp)
	require.NotEmpty(t, reg.Token)

	resp = f.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{
		Username: username,
		Password: "parola123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[api.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	require.NotEmpty(t, login.User.ID)
	return login.Token, login.User
}

func TestRegisterLoginLogout(t *testing.T) {
	f := setup(t)

	token, user := f.registerAndLogin(t, "alice")
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 1, user.Version)

	// The token authorizes a protected request.
	resp := f.do(t, http.MethodGet, "/users/"+user.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[api.UserResponse](t, resp)
	assert.Equal(t, "alice", got.User.Username)

	// Logout revokes the session; the same token is now rejected even
	// though it has not expired.
	resp = f.do(t, http.MethodGet, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out", decode[api.MessageResponse](t, resp).Message)

	resp = f.do(t, http.MethodGet, "/users/"+user.ID, token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", decode[api.MessageResponse](t, resp).Message)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := setup(t)
	f.registerAndLogin(t, "alice")

	resp := f.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Invalid username or password", decode[api.MessageResponse](t, resp).Message)

	resp = f.do(t, http.MethodPost, "/auth/login", "", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := setup(t)
	f.registerAndLogin(t, "alice")

	resp := f.do(t, http.MethodPost, "/auth/register", "", api.RegisterRequest{
		User:     profile("alice"),
		Password: "alta-parola",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChangePassword(t *testing.T) {
	f := setup(t)
	token, user := f.registerAndLogin(t, "alice")

	resp := f.do(t, http.MethodPost, "/auth/change-password", token, api.ChangePasswordRequest{
		UserID:      user.ID,
		OldPassword: "parola123",
		NewPassword: "noua-parola",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{
		Username: "alice",
		Password: "noua-parola",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateUser(t *testing.T) {
	f := setup(t)
	token, user := f.registerAndLogin(t, "alice")

	user.Address = "Str. Noua 7"
	resp := f.do(t, http.MethodPut, "/users", token, user)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[api.UserResponse](t, resp)
	assert.Equal(t, "Str. Noua 7", updated.User.Address)
	assert.Equal(t, 2, updated.User.Version)
}

func TestOffersEndToEnd(t *testing.T) {
	f := setup(t)
	token, meserias := f.registerAndLogin(t, "mester-ion")

	// No offers yet: the public listing reports not found.
	resp := f.do(t, http.MethodGet, "/offers", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/offers", token, repository.OfferRequest{
		MeseriasID:  meserias.ID,
		CategoryID:  f.categoryID,
		Description: "Montaj prize",
		StartPrice:  150,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The public listing resolves the references.
	resp = f.do(t, http.MethodGet, "/offers", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	offers := decode[api.OffersResponse](t, resp)
	require.Len(t, offers.Offers, 1)
	offer := offers.Offers[0]
	assert.Equal(t, "mester-ion", offer.Meserias.Username)
	assert.Equal(t, "Electrician", offer.Category.Name)

	// Offers of one meserias (protected).
	resp = f.do(t, http.MethodGet, "/offers/meserias/"+meserias.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[api.OffersResponse](t, resp).Offers, 1)

	// By category name (public).
	resp = f.do(t, http.MethodGet, "/offers/category/Electrician", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Filtering (protected).
	resp = f.do(t, http.MethodGet, "/offers/filter?county=Cluj", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[api.OffersResponse](t, resp).Offers, 1)

	resp = f.do(t, http.MethodGet, "/offers/filter?county=Bihor", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[api.OffersResponse](t, resp).Offers)

	// Update.
	resp = f.do(t, http.MethodPut, "/offers", token, repository.OfferRequest{
		ID:          offer.ID,
		MeseriasID:  meserias.ID,
		CategoryID:  f.categoryID,
		Description: "Montaj prize si intrerupatoare",
		StartPrice:  200,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Delete.
	resp = f.do(t, http.MethodDelete, "/offers", token, api.DeleteOfferRequest{OfferID: offer.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/offers", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOffersRequireAuth(t *testing.T) {
	f := setup(t)
	_, meserias := f.registerAndLogin(t, "mester-ion")

	resp := f.do(t, http.MethodPost, "/offers", "", repository.OfferRequest{
		MeseriasID: meserias.ID,
		CategoryID: f.categoryID,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", decode[api.MessageResponse](t, resp).Message)
}

func TestCategories(t *testing.T) {
	f := setup(t)

	resp := f.do(t, http.MethodGet, "/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	categories := decode[api.CategoriesResponse](t, resp)
	require.Len(t, categories.Categories, 1)
	assert.Equal(t, "Electrician", categories.Categories[0].Name)
}

func TestReviewsEndToEnd(t *testing.T) {
	f := setup(t)
	_, meserias := f.registerAndLogin(t, "mester-ion")
	_, customer := f.registerAndLogin(t, "client-maria")

	// No reviews yet.
	resp := f.do(t, http.MethodGet, "/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/reviews", "", api.AddReviewRequest{
		Meserias: meserias.ID,
		User:     customer.ID,
		Stars:    5,
		Text:     "Lucrare excelenta",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	added := decode[api.AddReviewResponse](t, resp)
	assert.NotEmpty(t, added.ID)

	resp = f.do(t, http.MethodPost, "/reviews", "", api.AddReviewRequest{
		Meserias: meserias.ID,
		User:     customer.ID,
		Stars:    3,
		Text:     "Acceptabil",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/reviews", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	reviews := decode[api.ReviewsResponse](t, resp)
	require.Len(t, reviews.Reviews, 2)
	assert.Equal(t, "mester-ion", reviews.Reviews[0].Meserias.Username)
	assert.Equal(t, "client-maria", reviews.Reviews[0].User.Username)

	resp = f.do(t, http.MethodGet, "/reviews/average/"+meserias.ID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	avg := decode[api.AverageReviewResponse](t, resp)
	assert.InDelta(t, 4.0, avg.AverageReview, 1e-9)

	// Missing fields are rejected.
	resp = f.do(t, http.MethodPost, "/reviews", "", api.AddReviewRequest{
		Meserias: meserias.ID,
		Stars:    5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
