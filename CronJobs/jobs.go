package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler runs the recurring fleet jobs: trip generation from
// schedules, odometer reminders, and the stock and tax email alerts.
type Scheduler struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	runImmediately bool
}

// NewScheduler creates a scheduler with the given configuration
func NewScheduler(db *gorm.DB, runImmediately bool) *Scheduler {
	return &Scheduler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		runImmediately: runImmediately,
	}
}

// Start registers and launches the cron jobs
func (s *Scheduler) Start() error {
	jobs := []struct {
		schedule string
		name     string
		run      func()
	}{
		{"0 0 4 * * *", "scheduled trip generation", func() {
			created, err := GenerateScheduledTrips(s.db)
			if err != nil {
				log.Printf("Error generating scheduled trips: %v", err)
				return
			}
			log.Printf("Generated %d scheduled trips", created)
		}},
		{"0 0 * * * *", "trip odometer reminders", func() {
			if err := CheckTripReminders(s.db); err != nil {
				log.Printf("Error checking trip reminders: %v", err)
			}
		}},
		{"0 0 8 * * *", "stock alerts", func() {
			if err := CheckStockAlerts(s.db); err != nil {
				log.Printf("Error checking stock alerts: %v", err)
			}
		}},
		{"0 30 8 * * *", "tax alerts", func() {
			if err := CheckTaxAlerts(s.db); err != nil {
				log.Printf("Error checking tax alerts: %v", err)
			}
		}},
	}

	for _, job := range jobs {
		job := job
		_, err := s.cronScheduler.AddFunc(job.schedule, func() {
			log.Println("Running scheduled job:", job.name)
			job.run()
		})
		if err != nil {
			return fmt.Errorf("error scheduling %s: %w", job.name, err)
		}
	}

	s.cronScheduler.Start()
	log.Println("Fleet job scheduler started")

	if s.runImmediately {
		log.Println("Running initial job pass")
		for _, job := range jobs {
			job.run()
		}
	}

	return nil
}

// Stop terminates the scheduler
func (s *Scheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Fleet job scheduler stopped")
	}
}
