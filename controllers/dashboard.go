package controllers

import (
	"net/http"
	"time"

	"barberhub-backend/models"
	"barberhub-backend/store"
	"barberhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalBookings    int              `json:"totalBookings"`
	TodaysBookings   int              `json:"todaysBookings"`
	PendingBookings  int              `json:"pendingBookings"`
	ConfirmedRevenue float64          `json:"confirmedRevenue"`
	ServiceCount     int              `json:"serviceCount"`
	Rating           float64          `json:"rating"`
	ReviewCount      int              `json:"reviewCount"`
	Upcoming         []models.Booking `json:"upcoming"`
}

// GetDashboardOverview aggregates the owner dashboard numbers for the
// session's shop.
func GetDashboardOverview(c *gin.Context) {
	shopID, ok := sessionShopID(c)
	if !ok {
		return
	}

	shop, err := Shops.GetByID(shopID)
	if err != nil {
		respondStoreError(c, err, "Shop not found")
		return
	}

	bookings, err := Bookings.ListForShop(shopID, store.BookingFilters{})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	overview := DashboardOverview{
		TotalBookings: len(bookings),
		ServiceCount:  len(shop.Services),
		Rating:        shop.Rating,
		ReviewCount:   shop.ReviewCount,
		Upcoming:      []models.Booking{},
	}

	for _, b := range bookings {
		if b.BookingDate == today {
			overview.TodaysBookings++
		}
		if b.Status == models.BookingStatusPending {
			overview.PendingBookings++
		}
		if b.Status == models.BookingStatusConfirmed {
			overview.ConfirmedRevenue += b.ServicePrice
		}

		// Next week's confirmed and pending bookings, capped at five;
		// the listing is already date/time ordered.
		if b.Status != models.BookingStatusCancelled && len(overview.Upcoming) < 5 {
			if date, err := time.Parse("2006-01-02", b.BookingDate); err == nil {
				days := utils.DaysBetween(now, date)
				if days >= 0 && days <= 7 {
					overview.Upcoming = append(overview.Upcoming, b)
				}
			}
		}
	}

	c.JSON(http.StatusOK, overview)
}
