// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"receipttrack-backend/models"
	"receipttrack-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService texts customers the day before their appointment.
// With no Twilio credentials configured it only logs what it would send.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	s := &ReminderService{
		db:   db,
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
	if accountSid != "" && authToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return s
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

// SendDailyReminders processes every appointment scheduled for tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	start := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	end := start.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Preload("Customer").
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_date").
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(appointment)
	}

	log.Printf("Daily reminder processing completed: %d appointment(s)", len(appointments))
}

func (s *ReminderService) sendReminder(appointment models.Appointment) {
	customer := appointment.Customer
	if customer.Phone == "" {
		log.Printf("Appointment %d: customer %q has no phone, skipping", appointment.ID, customer.Name)
		return
	}

	message := fmt.Sprintf("Hi %s, this is a reminder of your appointment on %s.",
		customer.Name, appointment.AppointmentDate.Format("Jan 2 at 3:04 PM"))

	status := "sent"
	errorMsg := ""

	if s.client == nil {
		status = "skipped"
		log.Printf("Twilio not configured, would send to %s: %s", customer.Phone, message)
	} else {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(customer.Phone)
		params.SetFrom(s.from)
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", customer.Phone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", customer.Phone)
		}
	}

	reminderLog := models.ReminderLog{
		AppointmentID: appointment.ID,
		CustomerID:    customer.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %d: %v", appointment.ID, err)
	}
}
