package store

import (
	"barberhub-backend/models"
	"barberhub-backend/utils"

	"github.com/google/uuid"
)

// validateBooking enforces the shared write contract for both backends:
// service, date, time and all three contact fields must be present, and the
// email must look like local@domain.tld. Nothing here inspects existing
// bookings, so double-booked slots pass.
func validateBooking(input BookingInput) error {
	if input.ShopID == uuid.Nil {
		return &ValidationError{Field: "shopId", Message: "shop is required"}
	}
	if input.ServiceID == uuid.Nil {
		return &ValidationError{Field: "serviceId", Message: "service is required"}
	}
	if input.Date == "" {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if input.Time == "" {
		return &ValidationError{Field: "time", Message: "time is required"}
	}
	if input.CustomerName == "" {
		return &ValidationError{Field: "customerName", Message: "name is required"}
	}
	if input.CustomerEmail == "" {
		return &ValidationError{Field: "customerEmail", Message: "email is required"}
	}
	if input.CustomerPhone == "" {
		return &ValidationError{Field: "customerPhone", Message: "phone is required"}
	}
	if !utils.ValidateEmail(input.CustomerEmail) {
		return &ValidationError{Field: "customerEmail", Message: "invalid email address"}
	}
	return nil
}

// validateStatus restricts status writes to the three known values. Any
// transition between them is allowed, including cancelled back to confirmed.
func validateStatus(status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		return nil
	}
	return &ValidationError{Field: "status", Message: "status must be pending, confirmed or cancelled"}
}
