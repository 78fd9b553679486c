package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BusSchedule struct {
	gorm.Model
	BusID    uint `json:"bus_id" gorm:"index"`
	RouteID  uint `json:"route_id" gorm:"index"`
	DriverID uint `json:"driver_id" gorm:"index"`

	// JSON array of lowercase day names, e.g. ["monday","thursday"]
	DaysOfWeek    datatypes.JSON `json:"days_of_week"`
	DepartureTime string         `json:"departure_time"` // "15:04"
	ArrivalTime   string         `json:"arrival_time"`

	IsTwoWay            bool    `json:"is_two_way"`
	ReturnDepartureTime string  `json:"return_departure_time"`
	ReturnArrivalTime   string  `json:"return_arrival_time"`
	TurnaroundHours     float64 `json:"turnaround_hours"`

	IsActive bool   `json:"is_active" gorm:"default:true"`
	Notes    string `json:"notes"`

	Bus    *Bus   `json:"bus,omitempty" gorm:"foreignKey:BusID"`
	Route  *Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	Driver *User  `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
}
