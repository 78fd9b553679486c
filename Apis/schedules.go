package Apis

import (
	"encoding/json"
	"log"
	"net/http"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func checkDaysOfWeek(raw json.RawMessage) bool {
	var days []string
	if err := json.Unmarshal(raw, &days); err != nil {
		return false
	}
	if len(days) == 0 {
		return false
	}
	for _, day := range days {
		if !validDays[day] {
			return false
		}
	}
	return true
}

func GetSchedules(c *fiber.Ctx) error {
	var schedules []Models.BusSchedule
	query := Models.DB.Preload("Bus").Preload("Route").Preload("Driver")
	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&schedules).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch schedules",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    schedules,
	})
}

func CreateSchedule(c *fiber.Ctx) error {
	var schedule Models.BusSchedule
	if err := c.BodyParser(&schedule); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if schedule.BusID == 0 || schedule.RouteID == 0 || schedule.DriverID == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "bus_id, route_id and driver_id are required",
		})
	}
	if !checkDaysOfWeek(json.RawMessage(schedule.DaysOfWeek)) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "days_of_week must be a non-empty array of day names",
		})
	}
	if schedule.IsTwoWay && schedule.ReturnDepartureTime == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "return_departure_time is required for two-way schedules",
		})
	}
	schedule.IsActive = true
	if err := Models.DB.Create(&schedule).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't create schedule",
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Schedule created",
		"data":    schedule,
	})
}

func UpdateSchedule(c *fiber.Ctx) error {
	var schedule Models.BusSchedule
	if err := Models.DB.First(&schedule, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Schedule not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch schedule",
		})
	}

	var updated Models.BusSchedule
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if len(updated.DaysOfWeek) > 0 && !checkDaysOfWeek(json.RawMessage(updated.DaysOfWeek)) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "days_of_week must be a non-empty array of day names",
		})
	}
	updated.ID = schedule.ID
	updated.CreatedAt = schedule.CreatedAt
	if err := Models.DB.Save(&updated).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update schedule",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Schedule updated",
		"data":    updated,
	})
}

// SetScheduleActive flips a schedule on or off without touching the
// rest of its fields.
func SetScheduleActive(c *fiber.Ctx) error {
	var schedule Models.BusSchedule
	if err := Models.DB.First(&schedule, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Schedule not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch schedule",
		})
	}

	var input struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := Models.DB.Model(&schedule).Update("is_active", input.IsActive).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update schedule",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Schedule updated",
		"data":    schedule,
	})
}

func DeleteSchedule(c *fiber.Ctx) error {
	var schedule Models.BusSchedule
	if err := Models.DB.First(&schedule, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Schedule not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch schedule",
		})
	}
	if err := Models.DB.Delete(&schedule).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't delete schedule",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Schedule deleted",
	})
}
