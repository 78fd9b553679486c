package Reports

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

// ExportPeriodTripSheet streams the period workbook as a download.
// Query params: period=weekly|monthly|custom, start_date and end_date
// ("2006-01-02") for custom periods.
func (h *ReportHandler) ExportPeriodTripSheet(c *fiber.Ctx) error {
	period := c.Query("period", "weekly")
	start, end, label, err := resolvePeriod(period, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	var trips []Models.Trip
	err = h.DB.Preload("Bus").Preload("Driver").Preload("Route").
		Where("start_date >= ? AND start_date <= ?", start, end).
		Order("start_date asc").
		Find(&trips).Error
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch trips",
		})
	}
	if len(trips) == 0 {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"message": "No trips found for the selected period",
		})
	}

	expensesByTrip, err := h.approvedExpenses(trips)
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch expenses",
		})
	}

	buses := GroupByBus(trips, expensesByTrip)
	f, err := BuildPeriodWorkbook(buses, label)
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't build trip sheet",
		})
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't write trip sheet",
		})
	}

	filename := fmt.Sprintf("fleet-trip-sheet-%s-%s.xlsx", period, time.Now().Format("2006-01-02"))
	return sendWorkbook(c, &buf, filename)
}

// ExportTripSheet streams a single trip's sheet.
func (h *ReportHandler) ExportTripSheet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid trip id",
		})
	}

	var trip Models.Trip
	err = h.DB.Preload("Bus").Preload("Driver").Preload("Route").
		First(&trip, id).Error
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

	expensesByTrip, err := h.approvedExpenses([]Models.Trip{trip})
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch expenses",
		})
	}

	vehicle := UnknownVehicle
	if trip.Bus != nil && trip.Bus.RegistrationNumber != "" {
		vehicle = trip.Bus.RegistrationNumber
	}

	rows := TripRows(trip, expensesByTrip[trip.ID])
	f, err := BuildTripWorkbook(rows, vehicle, trip.TripDate)
	if err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't build trip sheet",
		})
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't write trip sheet",
		})
	}

	filename := fmt.Sprintf("trip-sheet-%s.xlsx", trip.TripNumber)
	return sendWorkbook(c, &buf, filename)
}

// approvedExpenses loads the approved expenses for the given trips,
// keyed by trip ID, with category names resolved.
func (h *ReportHandler) approvedExpenses(trips []Models.Trip) (map[uint][]ExpenseItem, error) {
	ids := make([]uint, 0, len(trips))
	for _, trip := range trips {
		ids = append(ids, trip.ID)
	}

	var expenses []Models.Expense
	err := h.DB.Preload("Category").
		Where("trip_id IN ? AND status = ?", ids, "approved").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	byTrip := make(map[uint][]ExpenseItem)
	for _, expense := range expenses {
		item := ExpenseItem{Amount: expense.Amount}
		if expense.Category != nil {
			item.CategoryName = expense.Category.Name
		}
		byTrip[expense.TripID] = append(byTrip[expense.TripID], item)
	}
	return byTrip, nil
}

func resolvePeriod(period, startParam, endParam string) (time.Time, time.Time, string, error) {
	now := time.Now()
	switch period {
	case "weekly":
		end := now
		start := now.AddDate(0, 0, -7)
		label := start.Format("2 Jan 2006") + " to " + end.Format("2 Jan 2006")
		return start, end, label, nil
	case "monthly":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		return start, end, now.Format("January 2006"), nil
	case "custom":
		start, err := time.Parse("2006-01-02", startParam)
		if err != nil {
			return time.Time{}, time.Time{}, "", fmt.Errorf("invalid start_date")
		}
		end, err := time.Parse("2006-01-02", endParam)
		if err != nil {
			return time.Time{}, time.Time{}, "", fmt.Errorf("invalid end_date")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, "", fmt.Errorf("end_date is before start_date")
		}
		// Include the whole end day
		end = end.Add(24*time.Hour - time.Second)
		label := start.Format("2 Jan 2006") + " to " + end.Format("2 Jan 2006")
		return start, end, label, nil
	default:
		return time.Time{}, time.Time{}, "", fmt.Errorf("unknown period %q", period)
	}
}

func sendWorkbook(c *fiber.Ctx, buf *bytes.Buffer, filename string) error {
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	return c.Send(buf.Bytes())
}
