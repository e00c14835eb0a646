package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"barberhub-backend/controllers"
	"barberhub-backend/models"
	"barberhub-backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardOverview(t *testing.T) {
	r, s := newTestServer(t)
	shop := firstShop(t, s)
	auth := bearerToken(t, shop.ID)
	svc := shop.Services[0]

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	farOut := time.Now().AddDate(0, 0, 30).Format("2006-01-02")

	book := func(date, status string) {
		b, err := s.CreateBooking(store.BookingInput{
			ShopID:        shop.ID,
			ServiceID:     svc.ID,
			ServiceName:   svc.Name,
			ServicePrice:  svc.Price,
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "+15551234567",
			Date:          date,
			Time:          "10:00",
		})
		require.NoError(t, err)
		if status != models.BookingStatusPending {
			_, err = s.UpdateBookingStatus(b.ID, status)
			require.NoError(t, err)
		}
	}

	book(today, models.BookingStatusConfirmed)
	book(today, models.BookingStatusPending)
	book(tomorrow, models.BookingStatusCancelled)
	book(farOut, models.BookingStatusConfirmed)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", auth, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview controllers.DashboardOverview
	decodeBody(t, w, &overview)
	assert.Equal(t, 4, overview.TotalBookings)
	assert.Equal(t, 2, overview.TodaysBookings)
	assert.Equal(t, 1, overview.PendingBookings)
	assert.Equal(t, svc.Price*2, overview.ConfirmedRevenue)
	assert.Equal(t, len(shop.Services), overview.ServiceCount)
	assert.Equal(t, shop.Rating, overview.Rating)
	// Upcoming is the next week's non-cancelled bookings, so the far-out
	// confirmed one and the cancelled one are excluded.
	assert.Len(t, overview.Upcoming, 2)
}

func TestDashboardRequiresAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
