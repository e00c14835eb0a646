package controllers

import (
	"errors"
	"net/http"

	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Package-level store handles, wired once at startup. The backend (local
// file or postgres) is picked there and never mixed afterwards.
var (
	Shops    store.ShopStore
	Bookings store.BookingStore
	Users    store.UserStore
)

// Init wires the controllers to a storage backend.
func Init(s store.Store) {
	Shops = s
	Bookings = s
	Users = s
}

// sessionShopID reads the current shop from the request context placed there
// by the auth middleware.
func sessionShopID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("shopId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Shop ID not found in context")
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Shop ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid shop ID format")
		return uuid.Nil, false
	}
	return id, true
}

// sessionUserID reads the current user from the request context.
func sessionUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// respondStoreError maps store errors onto HTTP responses: validation
// failures are surfaced inline, missing entities are 404, everything else is
// a generic backend failure.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *store.ValidationError
	if errors.As(err, &vErr) {
		utils.RespondWithError(c, http.StatusBadRequest, vErr.Message)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
}
