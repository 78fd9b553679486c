package CronJobs

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"Fleet/Alerts"
	"Fleet/Models"

	"gorm.io/gorm"
)

// parseTimeToMinutes converts a "15:04" clock string to minutes since
// midnight, -1 on bad input.
func parseTimeToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return -1
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return -1
	}
	return hours*60 + minutes
}

// isOvernight reports whether a journey arrives on the next calendar
// day, detected by the arrival clock wrapping behind the departure.
func isOvernight(departure, arrival string) bool {
	dep := parseTimeToMinutes(departure)
	arr := parseTimeToMinutes(arrival)
	if dep < 0 || arr < 0 {
		return false
	}
	return arr < dep
}

func scheduleDays(schedule Models.BusSchedule) []string {
	var days []string
	if err := json.Unmarshal(schedule.DaysOfWeek, &days); err != nil {
		return nil
	}
	return days
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if strings.EqualFold(d, day) {
			return true
		}
	}
	return false
}

// GenerateScheduledTrips creates today's trips from the active
// schedules. A schedule is skipped when its trip already exists or when
// the bus or driver is already committed for the day. Two-way schedules
// produce a linked return trip.
func GenerateScheduledTrips(db *gorm.DB) (int, error) {
	today := time.Now()
	dayName := strings.ToLower(today.Weekday().String())
	tripDate := today.Format("2006-01-02")

	var schedules []Models.BusSchedule
	err := db.Preload("Bus").Preload("Route").Preload("Driver").
		Where("is_active = ?", true).Find(&schedules).Error
	if err != nil {
		return 0, err
	}

	created := 0
	for _, schedule := range schedules {
		if !containsDay(scheduleDays(schedule), dayName) {
			continue
		}

		var existing int64
		db.Model(&Models.Trip{}).
			Where("schedule_id = ? AND trip_date = ?", schedule.ID, tripDate).
			Count(&existing)
		if existing > 0 {
			continue
		}

		if busCommitted(db, schedule.BusID, tripDate) {
			log.Printf("Skipping schedule %d: bus already committed on %s", schedule.ID, tripDate)
			continue
		}
		if driverCommitted(db, schedule.DriverID, tripDate) {
			log.Printf("Skipping schedule %d: driver already committed on %s", schedule.ID, tripDate)
			continue
		}

		if err := createScheduledTrip(db, schedule, today); err != nil {
			log.Printf("Error creating trip for schedule %d: %v", schedule.ID, err)
			continue
		}
		created++
	}
	return created, nil
}

func busCommitted(db *gorm.DB, busID uint, tripDate string) bool {
	var count int64
	db.Model(&Models.Trip{}).
		Where("bus_id = ? AND trip_date = ? AND status IN ?", busID, tripDate,
			[]string{"scheduled", "in_progress"}).
		Count(&count)
	return count > 0
}

func driverCommitted(db *gorm.DB, driverID uint, tripDate string) bool {
	var count int64
	db.Model(&Models.Trip{}).
		Where("driver_id = ? AND trip_date = ? AND status IN ?", driverID, tripDate,
			[]string{"scheduled", "in_progress"}).
		Count(&count)
	return count > 0
}

func createScheduledTrip(db *gorm.DB, schedule Models.BusSchedule, today time.Time) error {
	tripDate := today.Format("2006-01-02")
	startDate := clockOnDay(today, schedule.DepartureTime)
	endDate := clockOnDay(today, schedule.ArrivalTime)
	if isOvernight(schedule.DepartureTime, schedule.ArrivalTime) {
		endDate = endDate.AddDate(0, 0, 1)
	}

	busName := ""
	if schedule.Bus != nil {
		busName = schedule.Bus.BusName
	}
	driverName := ""
	if schedule.Driver != nil {
		driverName = schedule.Driver.Name
	}

	busID := schedule.BusID
	driverID := schedule.DriverID
	scheduleID := schedule.ID

	outward := Models.Trip{
		TripNumber:         Models.GenerateTripNumber(startDate),
		BusID:              &busID,
		DriverID:           &driverID,
		RouteID:            schedule.RouteID,
		ScheduleID:         &scheduleID,
		TripDate:           tripDate,
		StartDate:          startDate,
		EndDate:            &endDate,
		Status:             "scheduled",
		TripType:           "one_way",
		CyclePosition:      1,
		BusNameSnapshot:    busName,
		DriverNameSnapshot: driverName,
		DepartureTime:      schedule.DepartureTime,
		ArrivalTime:        schedule.ArrivalTime,
	}
	if schedule.IsTwoWay {
		outward.TripType = "two_way"
		outward.ReturnDepartureTime = schedule.ReturnDepartureTime
		outward.ReturnArrivalTime = schedule.ReturnArrivalTime
	}

	tx := db.Begin()
	if err := tx.Create(&outward).Error; err != nil {
		tx.Rollback()
		return err
	}

	// Overnight two-way cycles get a linked trip for the way back so
	// the next day's run is already on the driver's board.
	if schedule.IsTwoWay && isOvernight(schedule.DepartureTime, schedule.ReturnArrivalTime) {
		returnStart := clockOnDay(today.AddDate(0, 0, 1), schedule.ReturnDepartureTime)
		returnTrip := Models.Trip{
			TripNumber:         Models.GenerateTripNumber(returnStart),
			BusID:              &busID,
			DriverID:           &driverID,
			RouteID:            schedule.RouteID,
			ScheduleID:         &scheduleID,
			TripDate:           returnStart.Format("2006-01-02"),
			StartDate:          returnStart,
			Status:             "scheduled",
			TripType:           "one_way",
			CyclePosition:      2,
			PreviousTripID:     &outward.ID,
			BusNameSnapshot:    busName,
			DriverNameSnapshot: driverName,
			DepartureTime:      schedule.ReturnDepartureTime,
			ArrivalTime:        schedule.ReturnArrivalTime,
		}
		if err := tx.Create(&returnTrip).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Model(&outward).Update("next_trip_id", returnTrip.ID).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	routeName := ""
	if schedule.Route != nil {
		routeName = schedule.Route.RouteName
	}
	notification := Models.Notification{
		UserID:  driverID,
		Title:   "New trip assigned",
		Message: fmt.Sprintf("Trip %s on %s (%s) has been scheduled for you", outward.TripNumber, tripDate, routeName),
		Type:    "info",
		Link:    "/driver/trips",
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		return err
	}
	tx.Commit()

	Alerts.SendPush(notification.Title, notification.Message)
	return nil
}

func clockOnDay(day time.Time, clock string) time.Time {
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	minutes := parseTimeToMinutes(clock)
	if minutes < 0 {
		return base
	}
	return base.Add(time.Duration(minutes) * time.Minute)
}
