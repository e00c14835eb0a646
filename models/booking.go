package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records a customer's request for a service at a shop on a
// date/time. The slot is a proposal, not a reservation: nothing prevents two
// bookings from targeting the same shop/date/time.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopID uuid.UUID `gorm:"type:uuid;index;not null" json:"shopId"`

	// Snapshot of the service at booking time, so the record stays
	// meaningful if the owner later edits or deletes the service.
	ServiceID       uuid.UUID `gorm:"type:uuid;index" json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    float64   `gorm:"type:decimal(10,2)" json:"servicePrice"`
	ServiceDuration int       `json:"serviceDuration"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null" json:"customerEmail"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	BookingDate string `gorm:"index;not null" json:"bookingDate"` // YYYY-MM-DD
	BookingTime string `gorm:"not null" json:"bookingTime"`       // HH:MM, 24h

	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
