package Models

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

// GenerateTripNumber builds a TRP number for a trip date, e.g.
// TRP260812042. The random tail keeps same-day numbers distinct.
func GenerateTripNumber(date time.Time) string {
	return fmt.Sprintf("TRP%s%03d", date.Format("060102"), rand.Intn(1000))
}

type Trip struct {
	gorm.Model
	TripNumber string `json:"trip_number" gorm:"uniqueIndex"`
	BusID      *uint  `json:"bus_id" gorm:"index"`
	DriverID   *uint  `json:"driver_id" gorm:"index"`
	RouteID    uint   `json:"route_id" gorm:"index"`
	ScheduleID *uint  `json:"schedule_id" gorm:"index"`

	TripDate  string     `json:"trip_date"` // "2006-01-02"
	StartDate time.Time  `json:"start_date" gorm:"index"`
	EndDate   *time.Time `json:"end_date"`

	Status   string `json:"status" gorm:"default:scheduled"` // scheduled, in_progress, completed, cancelled
	TripType string `json:"trip_type" gorm:"default:one_way"`

	// Return-leg linking for generated two-way cycles
	CyclePosition  int   `json:"cycle_position" gorm:"default:1"`
	PreviousTripID *uint `json:"previous_trip_id"`
	NextTripID     *uint `json:"next_trip_id"`

	// Names captured at creation so sheets survive later renames
	BusNameSnapshot    string `json:"bus_name_snapshot"`
	DriverNameSnapshot string `json:"driver_name_snapshot"`

	DepartureTime       string `json:"departure_time"` // "15:04"
	ArrivalTime         string `json:"arrival_time"`
	ReturnDepartureTime string `json:"return_departure_time"`
	ReturnArrivalTime   string `json:"return_arrival_time"`

	// Odometers are nullable so the reminder job can tell unset from zero
	OdometerStart       *float64 `json:"odometer_start"`
	OdometerEnd         *float64 `json:"odometer_end"`
	ReturnOdometerStart *float64 `json:"return_odometer_start"`
	ReturnOdometerEnd   *float64 `json:"return_odometer_end"`

	WaterTaken       float64 `json:"water_taken"`
	ReturnWaterTaken float64 `json:"return_water_taken"`

	// Outward revenue channels
	RevenueCash   float64 `json:"revenue_cash"`
	RevenueOnline float64 `json:"revenue_online"`
	RevenuePaytm  float64 `json:"revenue_paytm"`
	RevenueOthers float64 `json:"revenue_others"`
	RevenueAgent  float64 `json:"revenue_agent"`

	// Return revenue channels
	ReturnRevenueCash   float64 `json:"return_revenue_cash"`
	ReturnRevenueOnline float64 `json:"return_revenue_online"`
	ReturnRevenuePaytm  float64 `json:"return_revenue_paytm"`
	ReturnRevenueOthers float64 `json:"return_revenue_others"`
	ReturnRevenueAgent  float64 `json:"return_revenue_agent"`

	// Stored for display only. Reporting recomputes from the channel
	// columns because old rows drifted out of sync.
	TotalRevenue float64 `json:"total_revenue"`

	GSTPercentage float64 `json:"gst_percentage"`
	Notes         string  `json:"notes"`

	Bus    *Bus   `json:"bus,omitempty" gorm:"foreignKey:BusID"`
	Driver *User  `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Route  *Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
}

// OutwardRevenue sums the outward channels. The stored total is ignored.
func (t *Trip) OutwardRevenue() float64 {
	return t.RevenueCash + t.RevenueOnline + t.RevenuePaytm + t.RevenueOthers + t.RevenueAgent
}

func (t *Trip) ReturnRevenue() float64 {
	return t.ReturnRevenueCash + t.ReturnRevenueOnline + t.ReturnRevenuePaytm + t.ReturnRevenueOthers + t.ReturnRevenueAgent
}
