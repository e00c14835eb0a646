package controllers_test

import (
	"net/http"
	"testing"

	"barberhub-backend/models"
	"barberhub-backend/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShopsListsSeedData(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/shops", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var shops []models.Shop
	decodeBody(t, w, &shops)
	require.Len(t, shops, 3)
	assert.Equal(t, "Elite Barber Shop", shops[0].Name)
}

func TestGetShopsSearch(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/shops?search=ELITE", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var shops []models.Shop
	decodeBody(t, w, &shops)
	require.Len(t, shops, 1)
	assert.Equal(t, "Elite Barber Shop", shops[0].Name)

	// No matches still returns a JSON array, not null.
	w = doJSON(t, r, http.MethodGet, "/shops?search=nothing+matches+this", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetShopByID(t *testing.T) {
	r, s := newTestServer(t)
	shop := firstShop(t, s)

	w := doJSON(t, r, http.MethodGet, "/shops/"+shop.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Shop
	decodeBody(t, w, &got)
	assert.Equal(t, shop.ID, got.ID)
	assert.Len(t, got.Services, len(shop.Services))

	w = doJSON(t, r, http.MethodGet, "/shops/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/shops/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateShopProfile(t *testing.T) {
	r, s := newTestServer(t)
	shop := firstShop(t, s)
	auth := bearerToken(t, shop.ID)

	w := doJSON(t, r, http.MethodPut, "/api/profile/shop", auth, map[string]interface{}{
		"name":  "Renamed Shop",
		"phone": "+15559876543",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Shop
	decodeBody(t, w, &updated)
	assert.Equal(t, "Renamed Shop", updated.Name)
	assert.Equal(t, "+15559876543", updated.Phone)
	// Fields not in the patch keep their values.
	assert.Equal(t, shop.Owner, updated.Owner)
	assert.Equal(t, shop.Email, updated.Email)
}

func TestUpdateShopValidation(t *testing.T) {
	r, s := newTestServer(t)
	shop := firstShop(t, s)
	auth := bearerToken(t, shop.ID)

	w := doJSON(t, r, http.MethodPut, "/api/profile/shop", auth, map[string]string{"email": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email")

	w = doJSON(t, r, http.MethodPut, "/api/profile/shop", auth, map[string]string{"phone": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/profile/shop", "", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteShop(t *testing.T) {
	r, s := newTestServer(t)
	shop := firstShop(t, s)
	auth := bearerToken(t, shop.ID)

	w := doJSON(t, r, http.MethodDelete, "/api/profile/shop", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := s.GetByID(shop.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Repeating the delete is still a success.
	w = doJSON(t, r, http.MethodDelete, "/api/profile/shop", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
