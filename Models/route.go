package Models

import (
	"gorm.io/gorm"
)

type Route struct {
	gorm.Model
	RouteName              string  `json:"route_name"`
	FromAddress            string  `json:"from_address"`
	ToAddress              string  `json:"to_address"`
	DistanceKM             float64 `json:"distance_km"`
	EstimatedDurationHours float64 `json:"estimated_duration_hours"`
}
