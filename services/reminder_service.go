// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"

	"time"

	"barberhub-backend/models"
	"barberhub-backend/store"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ReminderService sends customers an SMS on the morning of their confirmed
// booking. It runs against whichever storage backend the app was started
// with.
type ReminderService struct {
	shops    store.ShopStore
	bookings store.BookingStore
	client   *twilio.RestClient
}

func NewReminderService(shops store.ShopStore, bookings store.BookingStore) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		shops:    shops,
		bookings: bookings,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	if _, err := c.AddFunc("0 8 * * *", s.SendDailyReminders); err != nil {
		log.Printf("Failed to schedule booking reminders: %v", err)
		return
	}

	c.Start()
	log.Println("Booking reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		log.Println("Twilio not configured, skipping booking reminders")
		return
	}

	log.Println("Starting daily booking reminder processing...")

	shops, err := s.shops.GetAll()
	if err != nil {
		log.Printf("Failed to fetch shops for reminders: %v", err)
		return
	}

	today := time.Now().Format("2006-01-02")
	for _, shop := range shops {
		s.processShopReminders(shop, today)
	}

	log.Println("Daily booking reminder processing completed")
}

func (s *ReminderService) processShopReminders(shop models.Shop, date string) {
	bookings, err := s.bookings.ListForShop(shop.ID, store.BookingFilters{
		Date:   date,
		Status: models.BookingStatusConfirmed,
	})
	if err != nil {
		log.Printf("Shop %s: failed to fetch today's bookings: %v", shop.ID, err)
		return
	}

	for _, booking := range bookings {
		message := fmt.Sprintf("Hi %s, this is a reminder of your %s appointment at %s today at %s. See you soon!",
			booking.CustomerName, booking.ServiceName, shop.Name, booking.BookingTime)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(booking.CustomerPhone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", booking.CustomerPhone, err)
			continue
		}
		if resp.Sid != nil {
			log.Printf("Reminder sent for booking %s, SID: %s", booking.ID, *resp.Sid)
		} else {
			log.Printf("Reminder sent for booking %s, but no SID returned", booking.ID)
		}
	}
}
