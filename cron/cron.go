package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Devxxxx/bigdealeg-backend/db"
	"github.com/Devxxxx/bigdealeg-backend/models"
	"github.com/Devxxxx/bigdealeg-backend/utils"
)

// StartCronJobs initializes and starts the cron scheduler for viewing reminders
func StartCronJobs() {
	c := cron.New()
	// Hourly sweep; ReminderSent keeps each viewing to one email
	_, err := c.AddFunc("0 * * * *", sendViewingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for viewing reminders")
}

// sendViewingReminders emails customers whose confirmed viewing is today
func sendViewingReminders() {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var viewings []models.ScheduledViewing
	err := db.DB.Preload("User").Preload("Property").
		Where("status = ?", models.StatusConfirmed).
		Where("reminder_sent = ?", false).
		Where("viewing_date >= ? AND viewing_date < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Find(&viewings).Error
	if err != nil {
		log.Printf("Error fetching viewings for reminders: %v", err)
		return
	}

	for _, viewing := range viewings {
		if err := sendReminderEmail(&viewing); err != nil {
			log.Printf("Failed to send reminder for viewing %d: %v", viewing.ID, err)
			continue
		}
		if err := db.DB.Model(&viewing).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to mark reminder sent for viewing %d: %v", viewing.ID, err)
			continue
		}
		log.Printf("Sent reminder for viewing %d to %s", viewing.ID, viewing.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(viewing *models.ScheduledViewing) error {
	subject := fmt.Sprintf("Reminder: Property Viewing Today - %s", viewing.Property.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your property viewing scheduled today.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Property:</strong> %s</li>
			<li><strong>Location:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>The BigDealEg Team</p>
	`, viewing.User.Name, viewing.Property.Title, viewing.Property.Location, viewing.ViewingTime)

	return utils.SendEmail(viewing.User.Email, subject, body)
}
