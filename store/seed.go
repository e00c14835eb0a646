package store

import (
	"time"

	"barberhub-backend/models"

	"github.com/google/uuid"
)

// DefaultShops is the built-in dataset the local store falls back to when no
// data file exists yet or the existing one cannot be read.
func DefaultShops() []models.Shop {
	now := time.Now()
	shops := []models.Shop{
		{
			ID:          uuid.New(),
			Name:        "Elite Barber Shop",
			Owner:       "John Smith",
			Email:       "john@elitebarber.com",
			Phone:       "(555) 123-4567",
			Address:     "123 Main Street, New York, NY 10001",
			Description: "Traditional barbering with modern style. We specialize in classic cuts, beard grooming, and hot towel shaves.",
			ColorScheme: models.ColorScheme{
				Primary:    "#d4af37",
				Secondary:  "#f4d03f",
				Background: "#1a1a1a",
				Text:       "#333333",
			},
			Hours: models.Hours{
				"monday":    "9:00 AM - 7:00 PM",
				"tuesday":   "9:00 AM - 7:00 PM",
				"wednesday": "9:00 AM - 7:00 PM",
				"thursday":  "9:00 AM - 7:00 PM",
				"friday":    "9:00 AM - 8:00 PM",
				"saturday":  "8:00 AM - 6:00 PM",
				"sunday":    "10:00 AM - 5:00 PM",
			},
			Rating:      4.8,
			ReviewCount: 156,
			SocialMedia: models.SocialLinks{
				"facebook":  "https://facebook.com/elitebarber",
				"instagram": "https://instagram.com/elitebarber",
				"twitter":   "https://twitter.com/elitebarber",
			},
			Services: []models.Service{
				{ID: uuid.New(), Name: "Classic Haircut", Price: 30, Duration: 45, Description: "Traditional barber haircut with precision styling"},
				{ID: uuid.New(), Name: "Beard Trim & Style", Price: 20, Duration: 30, Description: "Professional beard trimming and shaping"},
				{ID: uuid.New(), Name: "Hot Towel Shave", Price: 35, Duration: 40, Description: "Traditional hot towel shave with premium products"},
				{ID: uuid.New(), Name: "Elite Package", Price: 60, Duration: 90, Description: "Complete grooming experience with haircut, beard trim, and styling"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.New(),
			Name:        "Modern Cuts Studio",
			Owner:       "Mike Johnson",
			Email:       "mike@moderncuts.com",
			Phone:       "(555) 234-5678",
			Address:     "456 Brooklyn Ave, Brooklyn, NY 11201",
			Description: "Contemporary barbering with a focus on modern styles and trends. We stay ahead of the curve with the latest techniques.",
			ColorScheme: models.ColorScheme{
				Primary:    "#007cff",
				Secondary:  "#4da6ff",
				Background: "#f8f9fa",
				Text:       "#333333",
			},
			Hours: models.Hours{
				"monday":    "10:00 AM - 8:00 PM",
				"tuesday":   "10:00 AM - 8:00 PM",
				"wednesday": "10:00 AM - 8:00 PM",
				"thursday":  "10:00 AM - 8:00 PM",
				"friday":    "10:00 AM - 9:00 PM",
				"saturday":  "9:00 AM - 7:00 PM",
				"sunday":    "11:00 AM - 6:00 PM",
			},
			Rating:      4.6,
			ReviewCount: 89,
			SocialMedia: models.SocialLinks{
				"facebook":  "https://facebook.com/moderncuts",
				"instagram": "https://instagram.com/moderncuts",
				"twitter":   "https://twitter.com/moderncuts",
			},
			Services: []models.Service{
				{ID: uuid.New(), Name: "Modern Fade", Price: 35, Duration: 50, Description: "Contemporary fade with precision blending"},
				{ID: uuid.New(), Name: "Beard Sculpting", Price: 25, Duration: 35, Description: "Artistic beard shaping and styling"},
				{ID: uuid.New(), Name: "Hair Styling", Price: 20, Duration: 25, Description: "Professional hair styling and finishing"},
				{ID: uuid.New(), Name: "Complete Makeover", Price: 70, Duration: 100, Description: "Full transformation with cut, style, and beard work"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          uuid.New(),
			Name:        "Classic Barbers",
			Owner:       "Robert Brown",
			Email:       "robert@classicbarbers.com",
			Phone:       "(555) 345-6789",
			Address:     "789 Manhattan Blvd, Manhattan, NY 10018",
			Description: "Traditional barbering since 1950. We preserve the classic art of barbering with old-world techniques and modern comfort.",
			ColorScheme: models.ColorScheme{
				Primary:    "#8b4513",
				Secondary:  "#a0522d",
				Background: "#2c1810",
				Text:       "#f5f5f5",
			},
			Hours: models.Hours{
				"monday":    "8:00 AM - 6:00 PM",
				"tuesday":   "8:00 AM - 6:00 PM",
				"wednesday": "8:00 AM - 6:00 PM",
				"thursday":  "8:00 AM - 6:00 PM",
				"friday":    "8:00 AM - 7:00 PM",
				"saturday":  "8:00 AM - 5:00 PM",
				"sunday":    "Closed",
			},
			Rating:      4.9,
			ReviewCount: 203,
			SocialMedia: models.SocialLinks{
				"facebook":  "https://facebook.com/classicbarbers",
				"instagram": "https://instagram.com/classicbarbers",
				"twitter":   "https://twitter.com/classicbarbers",
			},
			Services: []models.Service{
				{ID: uuid.New(), Name: "Traditional Cut", Price: 25, Duration: 40, Description: "Classic barber cut with traditional techniques"},
				{ID: uuid.New(), Name: "Straight Razor Shave", Price: 30, Duration: 35, Description: "Traditional straight razor shave with hot towels"},
				{ID: uuid.New(), Name: "Mustache Trim", Price: 15, Duration: 20, Description: "Precise mustache trimming and styling"},
				{ID: uuid.New(), Name: "Gentleman's Package", Price: 50, Duration: 75, Description: "Complete traditional grooming experience"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for i := range shops {
		for j := range shops[i].Services {
			shops[i].Services[j].ShopID = shops[i].ID
		}
	}
	return shops
}

// DefaultColorScheme is applied to shops created without one.
func DefaultColorScheme() models.ColorScheme {
	return models.ColorScheme{
		Primary:    "#d4af37",
		Secondary:  "#f4d03f",
		Background: "#1a1a1a",
		Text:       "#333333",
	}
}
