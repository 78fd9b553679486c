package Apis

import (
	"log"
	"net/http"
	"time"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// nextTaxDueDate rolls the due date into the month after the payment,
// on the bus's configured due day.
func nextTaxDueDate(paidDate string, dueDay int) string {
	paid, err := time.Parse("2006-01-02", paidDate)
	if err != nil {
		paid = time.Now()
	}
	if dueDay < 1 || dueDay > 28 {
		dueDay = 1
	}
	next := time.Date(paid.Year(), paid.Month(), dueDay, 0, 0, 0, 0, paid.Location()).AddDate(0, 1, 0)
	return next.Format("2006-01-02")
}

func GetBuses(c *fiber.Ctx) error {
	var buses []Models.Bus
	query := Models.DB.Model(&Models.Bus{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("registration_number asc").Find(&buses).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch buses",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    buses,
	})
}

func GetBusById(c *fiber.Ctx) error {
	var bus Models.Bus
	if err := Models.DB.First(&bus, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Bus not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch bus",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    bus,
	})
}

func RegisterBus(c *fiber.Ctx) error {
	var bus Models.Bus
	if err := c.BodyParser(&bus); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if bus.RegistrationNumber == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "registration_number is required",
		})
	}
	if bus.Status == "" {
		bus.Status = "active"
	}
	if err := Models.DB.Create(&bus).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Registration number already exists",
		})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Bus registered",
		"data":    bus,
	})
}

func UpdateBus(c *fiber.Ctx) error {
	var bus Models.Bus
	if err := Models.DB.First(&bus, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Bus not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch bus",
		})
	}

	var updated Models.Bus
	if err := c.BodyParser(&updated); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	updated.ID = bus.ID
	updated.CreatedAt = bus.CreatedAt
	if err := Models.DB.Save(&updated).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update bus",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Bus updated",
		"data":    updated,
	})
}

func DeleteBus(c *fiber.Ctx) error {
	var bus Models.Bus
	if err := Models.DB.First(&bus, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Bus not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch bus",
		})
	}
	if err := Models.DB.Delete(&bus).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't delete bus",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Bus deleted",
	})
}

// GetBusTaxRecords lists a bus's road tax history.
func GetBusTaxRecords(c *fiber.Ctx) error {
	var records []Models.BusTaxRecord
	err := Models.DB.Where("bus_id = ?", c.Params("id")).
		Order("period_month desc").Find(&records).Error
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch tax records",
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    records,
	})
}

// PayBusTax records a tax payment and rolls the bus's next due date
// forward one month.
func PayBusTax(c *fiber.Ctx) error {
	var bus Models.Bus
	if err := Models.DB.First(&bus, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Bus not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch bus",
		})
	}

	var input struct {
		PeriodMonth string  `json:"period_month"`
		AmountPaid  float64 `json:"amount_paid"`
		PaidDate    string  `json:"paid_date"`
		Remarks     string  `json:"remarks"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	record := Models.BusTaxRecord{
		BusID:       bus.ID,
		PeriodMonth: input.PeriodMonth,
		AmountDue:   bus.MonthlyTaxAmount,
		AmountPaid:  input.AmountPaid,
		PaidDate:    input.PaidDate,
		Status:      "paid",
		Remarks:     input.Remarks,
	}

	tx := Models.DB.Begin()
	if err := tx.Create(&record).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't record payment",
		})
	}
	bus.LastTaxPaidDate = input.PaidDate
	bus.NextTaxDueDate = nextTaxDueDate(input.PaidDate, bus.TaxDueDay)
	if err := tx.Save(&bus).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update bus",
		})
	}
	tx.Commit()

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Tax payment recorded",
		"data":    record,
	})
}
