// controllers/booking.go
package controllers

import (
	"net/http"

	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateBookingInput is the tuple the booking wizard submits.
type CreateBookingInput struct {
	ServiceID     string `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"` // YYYY-MM-DD
	Time          string `json:"time"` // HH:MM
	Notes         string `json:"notes"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking records a booking request against a shop. The requested slot
// is a proposal: no check rejects a second booking for the same date/time.
func CreateBooking(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid shop ID format")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	shop, err := Shops.GetByID(shopID)
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}

	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Service is required")
		return
	}

	bookingInput := store.BookingInput{
		ShopID:        shop.ID,
		ServiceID:     serviceID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Date:          input.Date,
		Time:          input.Time,
		Notes:         input.Notes,
	}
	// Snapshot the service so the booking survives later edits to it.
	for _, svc := range shop.Services {
		if svc.ID == serviceID {
			bookingInput.ServiceName = svc.Name
			bookingInput.ServicePrice = svc.Price
			bookingInput.ServiceDuration = svc.Duration
			break
		}
	}

	booking, err := Bookings.CreateBooking(bookingInput)
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists the session shop's bookings, optionally narrowed by
// exact date and/or status, ordered by date then time.
func GetBookings(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	bookings, err := Bookings.ListForShop(shopID, store.BookingFilters{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus overwrites a booking's status. Any transition between
// pending, confirmed and cancelled is allowed.
func UpdateBookingStatus(c *gin.Context) {
	if _, ok := sessionShopID(c); !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := Bookings.UpdateBookingStatus(bookingID, input.Status)
	if err != nil {
		respondStoreError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}
