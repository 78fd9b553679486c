package CronJobs

import (
	"fmt"
	"log"
	"time"

	"Fleet/Alerts"
	"Fleet/Models"

	"gorm.io/gorm"
)

// CheckTripReminders nudges drivers whose trip starts within 24 hours
// but still has no opening odometer reading. At most one reminder per
// trip per day.
func CheckTripReminders(db *gorm.DB) error {
	now := time.Now()
	windowEnd := now.Add(24 * time.Hour)

	var trips []Models.Trip
	err := db.Where("status IN ? AND start_date >= ? AND start_date <= ? AND odometer_start IS NULL",
		[]string{"scheduled", "in_progress"}, now, windowEnd).
		Find(&trips).Error
	if err != nil {
		return err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, trip := range trips {
		if trip.DriverID == nil {
			continue
		}

		message := fmt.Sprintf("Trip %s starts soon and has no odometer reading yet. Please enter the start reading.", trip.TripNumber)

		// Dedupe: one reminder per trip per day
		var existing int64
		db.Model(&Models.Notification{}).
			Where("user_id = ? AND message = ? AND created_at >= ?", *trip.DriverID, message, startOfDay).
			Count(&existing)
		if existing > 0 {
			continue
		}

		notification := Models.Notification{
			UserID:  *trip.DriverID,
			Title:   "Odometer reading missing",
			Message: message,
			Type:    "warning",
			Link:    "/driver/trips",
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Error creating reminder for trip %s: %v", trip.TripNumber, err)
			continue
		}

		Alerts.SendPush(notification.Title, notification.Message)
	}
	return nil
}
