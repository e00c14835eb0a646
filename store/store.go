package store

import (
	"barberhub-backend/models"

	"github.com/google/uuid"
)

// ShopInput carries the fields accepted when creating a shop. Rating and
// review count always start at zero; a missing color scheme gets the default.
type ShopInput struct {
	Name        string
	Owner       string
	Email       string
	Phone       string
	Address     string
	Description string
	Logo        string
	ColorScheme *models.ColorScheme
	Hours       models.Hours
	SocialMedia models.SocialLinks
	Services    []ServiceInput
}

type ServiceInput struct {
	Name        string
	Price       float64
	Duration    int
	Description string
}

// ShopPatch enumerates the shop fields that may be updated. Nil fields are
// left untouched.
type ShopPatch struct {
	Name        *string
	Owner       *string
	Email       *string
	Phone       *string
	Address     *string
	Description *string
	Logo        *string
	ColorScheme *models.ColorScheme
	Hours       *models.Hours
	SocialMedia *models.SocialLinks
	Rating      *float64
	ReviewCount *int
}

type ServicePatch struct {
	Name        *string
	Price       *float64
	Duration    *int
	Description *string
}

type BookingInput struct {
	ShopID          uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	ServicePrice    float64
	ServiceDuration int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	Notes           string
}

// BookingFilters optionally narrow a booking listing. Zero values mean "no
// filter".
type BookingFilters struct {
	Date   string
	Status string
}

// ShopStore owns shop entities and their nested service lists. GetAll and
// Search return shops newest-first on the postgres backend and in insertion
// order on the local backend; Search always uses the same ordering as GetAll.
type ShopStore interface {
	GetAll() ([]models.Shop, error)
	GetByID(id uuid.UUID) (*models.Shop, error)
	Create(input ShopInput) (*models.Shop, error)
	Update(id uuid.UUID, patch ShopPatch) (*models.Shop, error)
	// Delete is idempotent: removing a shop that does not exist is not an
	// error. The postgres backend cascades to the shop's services.
	Delete(id uuid.UUID) error
	Search(query string) ([]models.Shop, error)

	AddService(shopID uuid.UUID, input ServiceInput) (*models.Service, error)
	// UpdateService and DeleteService fail soft: a missing (shop, service)
	// pair yields (nil, nil) / (false, nil), never an error. Callers must
	// check the first return value.
	UpdateService(shopID, serviceID uuid.UUID, patch ServicePatch) (*models.Service, error)
	DeleteService(shopID, serviceID uuid.UUID) (bool, error)
}

// BookingStore records booking requests. CreateBooking performs no overlap
// check: two bookings for the same shop/date/time both succeed.
type BookingStore interface {
	CreateBooking(input BookingInput) (*models.Booking, error)
	ListForShop(shopID uuid.UUID, filters BookingFilters) ([]models.Booking, error)
	UpdateBookingStatus(id uuid.UUID, status string) (*models.Booking, error)
}

// UserStore holds owner accounts for the dashboard.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	TouchLastLogin(id uuid.UUID) error
}

// Store is the full surface a storage backend provides. Both backends
// implement it; the backend is picked once at startup and never mixed.
type Store interface {
	ShopStore
	BookingStore
	UserStore
}
