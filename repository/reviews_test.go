package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meseriasii/meseriasii/storage"
	"github.com/meseriasii/meseriasii/storage/memory"
)

func newReviewsFixture(t *testing.T) (*Reviews, User, User) {
	t.Helper()
	store := memory.NewStore()
	users := NewUsers(store)

	meserias, err := users.Register(testUser("mester-ion"), "parola123")
	require.NoError(t, err)
	customer, err := users.Register(testUser("client-maria"), "parola123")
	require.NoError(t, err)

	return NewReviews(store), meserias, customer
}

func TestAddAndListReviews(t *testing.T) {
	reviews, meserias, customer := newReviewsFixture(t)

	id, err := reviews.Add(meserias.ID, customer.ID, 5, "Lucrare excelenta")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	list, err := reviews.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	review := list[0]
	assert.Equal(t, id, review.ID)
	assert.Equal(t, 5, review.Stars)
	assert.Equal(t, "Lucrare excelenta", review.Text)
	assert.Equal(t, "mester-ion", review.Meserias.Username)
	assert.Equal(t, "client-maria", review.User.Username)
}

func TestAddReviewUnknownMeserias(t *testing.T) {
	reviews, _, customer := newReviewsFixture(t)

	_, err := reviews.Add("no-such-user", customer.ID, 4, "text")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAverageFor(t *testing.T) {
	reviews, meserias, customer := newReviewsFixture(t)

	avg, err := reviews.AverageFor(meserias.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)

	for _, stars := range []int{5, 4, 3} {
		_, err := reviews.Add(meserias.ID, customer.ID, stars, "ok")
		require.NoError(t, err)
	}

	avg, err = reviews.AverageFor(meserias.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)

	// Reviews for other meserias do not contribute.
	avg, err = reviews.AverageFor(customer.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}
