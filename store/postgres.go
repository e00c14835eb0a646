package store

import (
	"context"
	"errors"
	"log"
	"time"

	"barberhub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultOpTimeout bounds every remote call. No operation blocks
// indefinitely; a deadline hit surfaces as a BackendError like any other
// transport failure.
const DefaultOpTimeout = 10 * time.Second

// PostgresStore is the remote-backed implementation. Each logical operation
// is one round trip; nothing is retried and no client-side transaction spans
// multiple calls.
type PostgresStore struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db, timeout: DefaultOpTimeout}
}

func (s *PostgresStore) conn() (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	return s.db.WithContext(ctx), cancel
}

func (s *PostgresStore) GetAll() ([]models.Shop, error) {
	db, cancel := s.conn()
	defer cancel()

	var shops []models.Shop
	if err := db.Preload("Services").Order("created_at DESC").Find(&shops).Error; err != nil {
		return nil, &BackendError{Op: "shops.select", Err: err}
	}
	return shops, nil
}

func (s *PostgresStore) GetByID(id uuid.UUID) (*models.Shop, error) {
	db, cancel := s.conn()
	defer cancel()

	var shop models.Shop
	if err := db.Preload("Services").First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: "shops.select", Err: err}
	}
	return &shop, nil
}

// Create inserts the shop and its initial services as two separate calls.
// When the services insert fails the already-inserted shop is NOT rolled
// back; the orphan is logged as a reportable inconsistency and the error is
// surfaced to the caller.
func (s *PostgresStore) Create(input ShopInput) (*models.Shop, error) {
	shop := models.Shop{
		ID:          uuid.New(),
		Name:        input.Name,
		Owner:       input.Owner,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		Description: input.Description,
		Logo:        input.Logo,
		ColorScheme: DefaultColorScheme(),
		Hours:       input.Hours,
		SocialMedia: input.SocialMedia,
		Rating:      0,
		ReviewCount: 0,
	}
	if input.ColorScheme != nil {
		shop.ColorScheme = *input.ColorScheme
	}
	if shop.Hours == nil {
		shop.Hours = models.Hours{}
	}
	if shop.SocialMedia == nil {
		shop.SocialMedia = models.SocialLinks{}
	}

	db, cancel := s.conn()
	defer cancel()
	if err := db.Omit("Services").Create(&shop).Error; err != nil {
		return nil, &BackendError{Op: "shops.insert", Err: err}
	}

	if len(input.Services) > 0 {
		services := make([]models.Service, 0, len(input.Services))
		for _, svc := range input.Services {
			services = append(services, models.Service{
				ID:          uuid.New(),
				ShopID:      shop.ID,
				Name:        svc.Name,
				Price:       svc.Price,
				Duration:    svc.Duration,
				Description: svc.Description,
			})
		}
		db, cancel := s.conn()
		defer cancel()
		if err := db.Create(&services).Error; err != nil {
			log.Printf("inconsistency: shop %s created but services insert failed: %v", shop.ID, err)
			return nil, &BackendError{Op: "services.insert", Err: err}
		}
	}

	return s.GetByID(shop.ID)
}

func (s *PostgresStore) Update(id uuid.UUID, patch ShopPatch) (*models.Shop, error) {
	db, cancel := s.conn()
	defer cancel()

	var shop models.Shop
	if err := db.First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: "shops.select", Err: err}
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Owner != nil {
		updates["owner"] = *patch.Owner
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Logo != nil {
		updates["logo"] = *patch.Logo
	}
	if patch.ColorScheme != nil {
		updates["color_scheme"] = *patch.ColorScheme
	}
	if patch.Hours != nil {
		updates["hours"] = *patch.Hours
	}
	if patch.SocialMedia != nil {
		updates["social_media"] = *patch.SocialMedia
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.ReviewCount != nil {
		updates["review_count"] = *patch.ReviewCount
	}

	if len(updates) > 0 {
		if err := db.Model(&shop).Updates(updates).Error; err != nil {
			return nil, &BackendError{Op: "shops.update", Err: err}
		}
	}
	return s.GetByID(id)
}

func (s *PostgresStore) Delete(id uuid.UUID) error {
	db, cancel := s.conn()
	defer cancel()

	// Services go with the shop via the FK cascade. Deleting a missing id
	// is a no-op, not an error.
	if err := db.Delete(&models.Shop{}, "id = ?", id).Error; err != nil {
		return &BackendError{Op: "shops.delete", Err: err}
	}
	return nil
}

func (s *PostgresStore) Search(query string) ([]models.Shop, error) {
	if query == "" {
		return s.GetAll()
	}

	db, cancel := s.conn()
	defer cancel()

	term := "%" + query + "%"
	var shops []models.Shop
	if err := db.Preload("Services").
		Where("name ILIKE ? OR address ILIKE ? OR description ILIKE ?", term, term, term).
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		return nil, &BackendError{Op: "shops.search", Err: err}
	}
	return shops, nil
}

func (s *PostgresStore) AddService(shopID uuid.UUID, input ServiceInput) (*models.Service, error) {
	db, cancel := s.conn()
	defer cancel()

	var count int64
	if err := db.Model(&models.Shop{}).Where("id = ?", shopID).Count(&count).Error; err != nil {
		return nil, &BackendError{Op: "shops.select", Err: err}
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	svc := models.Service{
		ID:          uuid.New(),
		ShopID:      shopID,
		Name:        input.Name,
		Price:       input.Price,
		Duration:    input.Duration,
		Description: input.Description,
	}
	if err := db.Create(&svc).Error; err != nil {
		return nil, &BackendError{Op: "services.insert", Err: err}
	}
	return &svc, nil
}

func (s *PostgresStore) UpdateService(shopID, serviceID uuid.UUID, patch ServicePatch) (*models.Service, error) {
	db, cancel := s.conn()
	defer cancel()

	var svc models.Service
	if err := db.First(&svc, "shop_id = ? AND id = ?", shopID, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // soft contract: missing pair is not an error
		}
		return nil, &BackendError{Op: "services.select", Err: err}
	}

	if patch.Name != nil {
		svc.Name = *patch.Name
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.Duration != nil {
		svc.Duration = *patch.Duration
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}

	if err := db.Save(&svc).Error; err != nil {
		return nil, &BackendError{Op: "services.update", Err: err}
	}
	return &svc, nil
}

func (s *PostgresStore) DeleteService(shopID, serviceID uuid.UUID) (bool, error) {
	db, cancel := s.conn()
	defer cancel()

	result := db.Delete(&models.Service{}, "shop_id = ? AND id = ?", shopID, serviceID)
	if result.Error != nil {
		return false, &BackendError{Op: "services.delete", Err: result.Error}
	}
	return result.RowsAffected > 0, nil
}

func (s *PostgresStore) CreateBooking(input BookingInput) (*models.Booking, error) {
	if err := validateBooking(input); err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:              uuid.New(),
		ShopID:          input.ShopID,
		ServiceID:       input.ServiceID,
		ServiceName:     input.ServiceName,
		ServicePrice:    input.ServicePrice,
		ServiceDuration: input.ServiceDuration,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		BookingDate:     input.Date,
		BookingTime:     input.Time,
		Notes:           input.Notes,
		Status:          models.BookingStatusPending,
	}

	db, cancel := s.conn()
	defer cancel()
	if err := db.Create(&booking).Error; err != nil {
		return nil, &BackendError{Op: "bookings.insert", Err: err}
	}
	return &booking, nil
}

func (s *PostgresStore) ListForShop(shopID uuid.UUID, filters BookingFilters) ([]models.Booking, error) {
	db, cancel := s.conn()
	defer cancel()

	query := db.Where("shop_id = ?", shopID)
	if filters.Date != "" {
		query = query.Where("booking_date = ?", filters.Date)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	var bookings []models.Booking
	if err := query.Order("booking_date ASC, booking_time ASC").Find(&bookings).Error; err != nil {
		return nil, &BackendError{Op: "bookings.select", Err: err}
	}
	return bookings, nil
}

func (s *PostgresStore) UpdateBookingStatus(id uuid.UUID, status string) (*models.Booking, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	db, cancel := s.conn()
	defer cancel()

	result := db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, &BackendError{Op: "bookings.update", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var booking models.Booking
	if err := db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, &BackendError{Op: "bookings.select", Err: err}
	}
	return &booking, nil
}

func (s *PostgresStore) CreateUser(user *models.User) error {
	db, cancel := s.conn()
	defer cancel()
	if err := db.Create(user).Error; err != nil {
		return &BackendError{Op: "users.insert", Err: err}
	}
	return nil
}

func (s *PostgresStore) GetUserByEmail(email string) (*models.User, error) {
	db, cancel := s.conn()
	defer cancel()

	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: "users.select", Err: err}
	}
	return &user, nil
}

func (s *PostgresStore) GetUserByID(id uuid.UUID) (*models.User, error) {
	db, cancel := s.conn()
	defer cancel()

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &BackendError{Op: "users.select", Err: err}
	}
	return &user, nil
}

func (s *PostgresStore) TouchLastLogin(id uuid.UUID) error {
	db, cancel := s.conn()
	defer cancel()

	now := time.Now()
	if err := db.Model(&models.User{}).Where("id = ?", id).Update("last_login", &now).Error; err != nil {
		return &BackendError{Op: "users.update", Err: err}
	}
	return nil
}

var _ Store = (*PostgresStore)(nil)
