package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ColorScheme holds the per-shop branding colors applied by the storefront.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

func (cs ColorScheme) Value() (driver.Value, error) {
	return json.Marshal(cs)
}

func (cs *ColorScheme) Scan(value interface{}) error {
	return scanJSONB(value, cs)
}

// Hours maps a lowercase weekday name to a display string like "9:00 AM - 7:00 PM".
type Hours map[string]string

func (h Hours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *Hours) Scan(value interface{}) error {
	return scanJSONB(value, h)
}

// SocialLinks maps a network name (facebook, instagram, ...) to a profile URL.
type SocialLinks map[string]string

func (s SocialLinks) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SocialLinks) Scan(value interface{}) error {
	return scanJSONB(value, s)
}

func scanJSONB(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return errors.New("unsupported type for jsonb scan")
	}
}

type Shop struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Owner       string      `gorm:"not null" json:"owner"`
	Email       string      `gorm:"not null" json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Description string      `gorm:"type:text" json:"description"`
	Logo        string      `gorm:"type:text" json:"logo"`
	ColorScheme ColorScheme `gorm:"type:jsonb;default:'{}'" json:"colorScheme"`
	Hours       Hours       `gorm:"type:jsonb;default:'{}'" json:"hours"`
	SocialMedia SocialLinks `gorm:"type:jsonb;default:'{}'" json:"socialMedia"`
	Rating      float64     `gorm:"default:0" json:"rating"`
	ReviewCount int         `gorm:"default:0" json:"reviewCount"`

	Services []Service `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"services"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
