package Controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TripHandler contains handler methods for trip routes
type TripHandler struct {
	DB *gorm.DB
}

func NewTripHandler(db *gorm.DB) *TripHandler {
	return &TripHandler{
		DB: db,
	}
}

// parsePagination converts the page and limit query values, falling
// back to page 1 and limit 20. Limit is capped at 100.
func parsePagination(pageParam, limitParam string) (page, limit, offset int) {
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(limitParam)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}

// GetAllTrips returns trips with pagination, optional date range,
// status filter and search over trip number and snapshots.
func (h *TripHandler) GetAllTrips(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c.Query("page", "1"), c.Query("limit", "20"))

	query := h.DB.Model(&Models.Trip{}).
		Preload("Bus").Preload("Driver").Preload("Route")

	if startDate := c.Query("start_date"); startDate != "" {
		query = query.Where("trip_date >= ?", startDate)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		query = query.Where("trip_date <= ?", endDate)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"trip_number LIKE ? OR bus_name_snapshot LIKE ? OR driver_name_snapshot LIKE ?",
			pattern, pattern, pattern)
	}

	// Drivers only see their own trips
	user, ok := c.Locals("user").(Models.User)
	if ok && user.Permission == 1 {
		query = query.Where("driver_id = ?", user.ID)
	}

	var total int64
	query.Count(&total)

	var trips []Models.Trip
	err := query.Order("start_date desc").Limit(limit).Offset(offset).Find(&trips).Error
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch trips",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    trips,
		"meta": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *TripHandler) GetTrip(c *fiber.Ctx) error {
	var trip Models.Trip
	err := h.DB.Preload("Bus").Preload("Driver").Preload("Route").
		First(&trip, c.Params("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Trip not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch trip",
		})
	}

	user, ok := c.Locals("user").(Models.User)
	if ok && user.Permission == 1 && (trip.DriverID == nil || *trip.DriverID != user.ID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"message": "Not your trip",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    trip,
	})
}

type CreateTripInput struct {
	BusID         uint    `json:"bus_id" validate:"required"`
	DriverID      uint    `json:"driver_id" validate:"required"`
	RouteID       uint    `json:"route_id" validate:"required"`
	TripDate      string  `json:"trip_date" validate:"required,datetime=2006-01-02"`
	TripType      string  `json:"trip_type" validate:"omitempty,oneof=one_way two_way"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	GSTPercentage float64 `json:"gst_percentage"`
	Notes         string  `json:"notes"`
}

// CreateTrip registers a trip, capturing bus and driver name snapshots
// so later renames don't rewrite history.
func (h *TripHandler) CreateTrip(c *fiber.Ctx) error {
	var input CreateTripInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if msgs := ValidateStruct(input); len(msgs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  msgs,
		})
	}

	var bus Models.Bus
	if err := h.DB.First(&bus, input.BusID).Error; err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Bus not found",
		})
	}
	var driver Models.User
	if err := h.DB.First(&driver, input.DriverID).Error; err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Driver not found",
		})
	}
	var route Models.Route
	if err := h.DB.First(&route, input.RouteID).Error; err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Route not found",
		})
	}

	startDate, err := time.Parse("2006-01-02", input.TripDate)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid trip_date",
		})
	}
	if input.DepartureTime != "" {
		if clock, err := time.Parse("15:04", input.DepartureTime); err == nil {
			startDate = startDate.Add(
				time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
		}
	}

	tripType := input.TripType
	if tripType == "" {
		tripType = "one_way"
	}

	trip := Models.Trip{
		TripNumber:         Models.GenerateTripNumber(startDate),
		BusID:              &bus.ID,
		DriverID:           &driver.ID,
		RouteID:            route.ID,
		TripDate:           input.TripDate,
		StartDate:          startDate,
		Status:             "scheduled",
		TripType:           tripType,
		BusNameSnapshot:    bus.BusName,
		DriverNameSnapshot: driver.Name,
		DepartureTime:      input.DepartureTime,
		ArrivalTime:        input.ArrivalTime,
		GSTPercentage:      input.GSTPercentage,
		Notes:              input.Notes,
	}
	if err := h.DB.Create(&trip).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't create trip",
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Trip created",
		"data":    trip,
	})
}

// DriverTripUpdate is the subset of fields a driver may edit on their
// own trip. Admins update trips through the full map below.
type DriverTripUpdate struct {
	OdometerStart       *float64 `json:"odometer_start"`
	OdometerEnd         *float64 `json:"odometer_end"`
	ReturnOdometerStart *float64 `json:"return_odometer_start"`
	ReturnOdometerEnd   *float64 `json:"return_odometer_end"`
	WaterTaken          *float64 `json:"water_taken"`
	ReturnWaterTaken    *float64 `json:"return_water_taken"`
}

func (h *TripHandler) UpdateTrip(c *fiber.Ctx) error {
	var trip Models.Trip
	if err := h.DB.First(&trip, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Trip not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch trip",
		})
	}

	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated",
		})
	}

	if user.Permission == 1 {
		if trip.DriverID == nil || *trip.DriverID != user.ID {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"message": "Not your trip",
			})
		}
		var input DriverTripUpdate
		if err := c.BodyParser(&input); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
			})
		}
		if input.OdometerStart != nil {
			trip.OdometerStart = input.OdometerStart
		}
		if input.OdometerEnd != nil {
			trip.OdometerEnd = input.OdometerEnd
		}
		if input.ReturnOdometerStart != nil {
			trip.ReturnOdometerStart = input.ReturnOdometerStart
		}
		if input.ReturnOdometerEnd != nil {
			trip.ReturnOdometerEnd = input.ReturnOdometerEnd
		}
		if input.WaterTaken != nil {
			trip.WaterTaken = *input.WaterTaken
		}
		if input.ReturnWaterTaken != nil {
			trip.ReturnWaterTaken = *input.ReturnWaterTaken
		}
	} else {
		var updated Models.Trip
		if err := c.BodyParser(&updated); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
			})
		}
		updated.ID = trip.ID
		updated.TripNumber = trip.TripNumber
		updated.CreatedAt = trip.CreatedAt
		trip = updated
	}

	if err := h.DB.Save(&trip).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update trip",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Trip updated",
		"data":    trip,
	})
}

type RevenueInput struct {
	RevenueCash   float64 `json:"revenue_cash" validate:"min=0"`
	RevenueOnline float64 `json:"revenue_online" validate:"min=0"`
	RevenuePaytm  float64 `json:"revenue_paytm" validate:"min=0"`
	RevenueOthers float64 `json:"revenue_others" validate:"min=0"`
	RevenueAgent  float64 `json:"revenue_agent" validate:"min=0"`
	ReturnLeg     bool    `json:"return_leg"`
}

// UpdateRevenue records a leg's channel collections and refreshes the
// stored display total from the channels.
func (h *TripHandler) UpdateRevenue(c *fiber.Ctx) error {
	var trip Models.Trip
	if err := h.DB.First(&trip, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Trip not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch trip",
		})
	}

	user, ok := c.Locals("user").(Models.User)
	if ok && user.Permission == 1 && (trip.DriverID == nil || *trip.DriverID != user.ID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"message": "Not your trip",
		})
	}

	var input RevenueInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if msgs := ValidateStruct(input); len(msgs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  msgs,
		})
	}

	if input.ReturnLeg {
		trip.ReturnRevenueCash = input.RevenueCash
		trip.ReturnRevenueOnline = input.RevenueOnline
		trip.ReturnRevenuePaytm = input.RevenuePaytm
		trip.ReturnRevenueOthers = input.RevenueOthers
		trip.ReturnRevenueAgent = input.RevenueAgent
	} else {
		trip.RevenueCash = input.RevenueCash
		trip.RevenueOnline = input.RevenueOnline
		trip.RevenuePaytm = input.RevenuePaytm
		trip.RevenueOthers = input.RevenueOthers
		trip.RevenueAgent = input.RevenueAgent
	}
	trip.TotalRevenue = trip.OutwardRevenue() + trip.ReturnRevenue()

	if err := h.DB.Save(&trip).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update revenue",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Revenue updated",
		"data":    trip,
	})
}

func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	var trip Models.Trip
	if err := h.DB.First(&trip, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Trip not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch trip",
		})
	}

	tx := h.DB.Begin()
	if err := tx.Where("trip_id = ?", trip.ID).Delete(&Models.Expense{}).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't delete trip expenses",
		})
	}
	if err := tx.Delete(&trip).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't delete trip",
		})
	}
	tx.Commit()

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Trip deleted",
	})
}
