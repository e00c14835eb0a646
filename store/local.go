package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"barberhub-backend/models"

	"github.com/google/uuid"
)

// Fixed storage keys, one file per collection.
const (
	shopsFile    = "barberhub_shops.json"
	bookingsFile = "barberhub_bookings.json"
	usersFile    = "barberhub_users.json"
)

// LocalStore keeps every collection as a serialized JSON array on disk and
// rewrites the whole array on each save, so readers never observe a partial
// write. There is no cross-process coordination: two writers produce a
// last-writer-wins outcome. Shops are kept in insertion order.
type LocalStore struct {
	mu  sync.Mutex
	dir string

	shops    []models.Shop
	bookings []models.Booking
	users    []models.User
}

// NewLocalStore loads the collections under dir, creating the directory if
// needed. An unreadable shops file is reported in the log as
// ErrStorageUnavailable and replaced by the built-in default dataset.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &LocalStore{dir: dir}

	if err := loadCollection(filepath.Join(dir, shopsFile), &s.shops); err != nil {
		log.Printf("shops file unreadable, falling back to defaults: %v (%v)", err, ErrStorageUnavailable)
		s.shops = DefaultShops()
		if err := s.saveShops(); err != nil {
			return nil, err
		}
	}
	if err := loadCollection(filepath.Join(dir, bookingsFile), &s.bookings); err != nil {
		log.Printf("bookings file unreadable, starting empty: %v", err)
		s.bookings = nil
	}
	if err := loadCollection(filepath.Join(dir, usersFile), &s.users); err != nil {
		log.Printf("users file unreadable, starting empty: %v", err)
		s.users = nil
	}

	return s, nil
}

// loadCollection reads a JSON array file into dest. A missing file counts as
// unreadable so first runs fall through to the defaults.
func loadCollection(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// saveCollection writes the full collection to a temp file and renames it
// into place.
func saveCollection(path string, collection interface{}) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return &BackendError{Op: "local.marshal", Err: err}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &BackendError{Op: "local.write", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &BackendError{Op: "local.rename", Err: err}
	}
	return nil
}

func (s *LocalStore) saveShops() error {
	return saveCollection(filepath.Join(s.dir, shopsFile), s.shops)
}

func (s *LocalStore) saveBookings() error {
	return saveCollection(filepath.Join(s.dir, bookingsFile), s.bookings)
}

func (s *LocalStore) saveUsers() error {
	return saveCollection(filepath.Join(s.dir, usersFile), s.users)
}

func (s *LocalStore) GetAll() ([]models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Shop(nil), s.shops...), nil
}

func (s *LocalStore) GetByID(id uuid.UUID) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shops {
		if s.shops[i].ID == id {
			shop := s.shops[i]
			return &shop, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LocalStore) Create(input ShopInput) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
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
		Services:    []models.Service{},
		CreatedAt:   now,
		UpdatedAt:   now,
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
	for _, svc := range input.Services {
		shop.Services = append(shop.Services, models.Service{
			ID:          uuid.New(),
			ShopID:      shop.ID,
			Name:        svc.Name,
			Price:       svc.Price,
			Duration:    svc.Duration,
			Description: svc.Description,
		})
	}

	s.shops = append(s.shops, shop)
	if err := s.saveShops(); err != nil {
		s.shops = s.shops[:len(s.shops)-1]
		return nil, err
	}
	return &shop, nil
}

func (s *LocalStore) Update(id uuid.UUID, patch ShopPatch) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.shops {
		if s.shops[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	shop := &s.shops[idx]
	if patch.Name != nil {
		shop.Name = *patch.Name
	}
	if patch.Owner != nil {
		shop.Owner = *patch.Owner
	}
	if patch.Email != nil {
		shop.Email = *patch.Email
	}
	if patch.Phone != nil {
		shop.Phone = *patch.Phone
	}
	if patch.Address != nil {
		shop.Address = *patch.Address
	}
	if patch.Description != nil {
		shop.Description = *patch.Description
	}
	if patch.Logo != nil {
		shop.Logo = *patch.Logo
	}
	if patch.ColorScheme != nil {
		shop.ColorScheme = *patch.ColorScheme
	}
	if patch.Hours != nil {
		shop.Hours = *patch.Hours
	}
	if patch.SocialMedia != nil {
		shop.SocialMedia = *patch.SocialMedia
	}
	if patch.Rating != nil {
		shop.Rating = *patch.Rating
	}
	if patch.ReviewCount != nil {
		shop.ReviewCount = *patch.ReviewCount
	}
	shop.UpdatedAt = time.Now()

	if err := s.saveShops(); err != nil {
		return nil, err
	}
	updated := *shop
	return &updated, nil
}

func (s *LocalStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.shops[:0]
	removed := false
	for _, shop := range s.shops {
		if shop.ID == id {
			removed = true
			continue
		}
		kept = append(kept, shop)
	}
	s.shops = kept
	if !removed {
		return nil
	}
	return s.saveShops()
}

func (s *LocalStore) Search(query string) ([]models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return append([]models.Shop(nil), s.shops...), nil
	}
	term := strings.ToLower(query)
	var matches []models.Shop
	for _, shop := range s.shops {
		if strings.Contains(strings.ToLower(shop.Name), term) ||
			strings.Contains(strings.ToLower(shop.Address), term) ||
			strings.Contains(strings.ToLower(shop.Description), term) {
			matches = append(matches, shop)
		}
	}
	return matches, nil
}

func (s *LocalStore) AddService(shopID uuid.UUID, input ServiceInput) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID != shopID {
			continue
		}
		svc := models.Service{
			ID:          uuid.New(),
			ShopID:      shopID,
			Name:        input.Name,
			Price:       input.Price,
			Duration:    input.Duration,
			Description: input.Description,
		}
		s.shops[i].Services = append(s.shops[i].Services, svc)
		if err := s.saveShops(); err != nil {
			return nil, err
		}
		return &svc, nil
	}
	return nil, ErrNotFound
}

func (s *LocalStore) UpdateService(shopID, serviceID uuid.UUID, patch ServicePatch) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID != shopID {
			continue
		}
		for j := range s.shops[i].Services {
			svc := &s.shops[i].Services[j]
			if svc.ID != serviceID {
				continue
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
			if err := s.saveShops(); err != nil {
				return nil, err
			}
			updated := *svc
			return &updated, nil
		}
		return nil, nil
	}
	return nil, nil
}

func (s *LocalStore) DeleteService(shopID, serviceID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shops {
		if s.shops[i].ID != shopID {
			continue
		}
		services := s.shops[i].Services
		kept := services[:0]
		removed := false
		for _, svc := range services {
			if svc.ID == serviceID {
				removed = true
				continue
			}
			kept = append(kept, svc)
		}
		if !removed {
			return false, nil
		}
		s.shops[i].Services = kept
		if err := s.saveShops(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *LocalStore) CreateBooking(input BookingInput) (*models.Booking, error) {
	if err := validateBooking(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

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
		CreatedAt:       time.Now(),
	}

	s.bookings = append(s.bookings, booking)
	if err := s.saveBookings(); err != nil {
		s.bookings = s.bookings[:len(s.bookings)-1]
		return nil, err
	}
	return &booking, nil
}

func (s *LocalStore) ListForShop(shopID uuid.UUID, filters BookingFilters) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.ShopID != shopID {
			continue
		}
		if filters.Date != "" && b.BookingDate != filters.Date {
			continue
		}
		if filters.Status != "" && b.Status != filters.Status {
			continue
		}
		result = append(result, b)
	}

	// ISO dates and 24h times sort correctly as strings.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].BookingDate != result[j].BookingDate {
			return result[i].BookingDate < result[j].BookingDate
		}
		return result[i].BookingTime < result[j].BookingTime
	})
	return result, nil
}

func (s *LocalStore) UpdateBookingStatus(id uuid.UUID, status string) (*models.Booking, error) {
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		s.bookings[i].Status = status
		if err := s.saveBookings(); err != nil {
			return nil, err
		}
		booking := s.bookings[i]
		return &booking, nil
	}
	return nil, ErrNotFound
}

func (s *LocalStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users = append(s.users, *user)
	if err := s.saveUsers(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return err
	}
	return nil
}

func (s *LocalStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LocalStore) GetUserByID(id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *LocalStore) TouchLastLogin(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			now := time.Now()
			s.users[i].LastLogin = &now
			return s.saveUsers()
		}
	}
	return ErrNotFound
}

var _ Store = (*LocalStore)(nil)
