package Controllers

import (
	"log"
	"net/http"
	"time"

	"Fleet/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{
		DB: db,
	}
}

func (h *ExpenseHandler) GetExpenses(c *fiber.Ctx) error {
	query := h.DB.Model(&Models.Expense{}).Preload("Category")

	if tripID := c.Query("trip_id"); tripID != "" {
		query = query.Where("trip_id = ?", tripID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if startDate := c.Query("start_date"); startDate != "" {
		query = query.Where("expense_date >= ?", startDate)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		query = query.Where("expense_date <= ?", endDate)
	}

	// Drivers only see what they submitted
	user, ok := c.Locals("user").(Models.User)
	if ok && user.Permission == 1 {
		query = query.Where("submitted_by = ?", user.ID)
	}

	var expenses []Models.Expense
	if err := query.Order("expense_date desc").Find(&expenses).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch expenses",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "OK",
		"data":    expenses,
	})
}

type CreateExpenseInput struct {
	TripID       uint    `json:"trip_id" validate:"required"`
	CategoryID   uint    `json:"category_id" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	ExpenseDate  string  `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Description  string  `json:"description"`
	DocumentURL  string  `json:"document_url"`
	FuelQuantity float64 `json:"fuel_quantity" validate:"min=0"`
}

// CreateExpense files an expense against a trip. Driver submissions
// always start out pending.
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var input CreateExpenseInput
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

	var trip Models.Trip
	if err := h.DB.First(&trip, input.TripID).Error; err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Trip not found",
		})
	}
	var category Models.ExpenseCategory
	if err := h.DB.First(&category, input.CategoryID).Error; err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Category not found",
		})
	}

	user, _ := c.Locals("user").(Models.User)
	if user.Permission == 1 && (trip.DriverID == nil || *trip.DriverID != user.ID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"message": "Not your trip",
		})
	}

	expense := Models.Expense{
		TripID:       trip.ID,
		CategoryID:   category.ID,
		SubmittedBy:  user.ID,
		Amount:       input.Amount,
		ExpenseDate:  input.ExpenseDate,
		Description:  input.Description,
		DocumentURL:  input.DocumentURL,
		FuelQuantity: input.FuelQuantity,
		Status:       "pending",
	}
	// Admin submissions are trusted as approved on entry
	if user.Permission >= 3 {
		now := time.Now()
		expense.Status = "approved"
		expense.ApprovedBy = &user.ID
		expense.ApprovedAt = &now
	}

	if err := h.DB.Create(&expense).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't create expense",
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Expense submitted",
		"data":    expense,
	})
}

type UpdateExpenseInput struct {
	CategoryID   *uint    `json:"category_id"`
	Amount       *float64 `json:"amount" validate:"omitempty,gt=0"`
	ExpenseDate  *string  `json:"expense_date" validate:"omitempty,datetime=2006-01-02"`
	Description  *string  `json:"description"`
	DocumentURL  *string  `json:"document_url"`
	FuelQuantity *float64 `json:"fuel_quantity" validate:"omitempty,min=0"`
}

// UpdateExpense edits an expense. Drivers may only touch their own
// pending submissions and can never change the status here.
func (h *ExpenseHandler) UpdateExpense(c *fiber.Ctx) error {
	var expense Models.Expense
	if err := h.DB.First(&expense, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Expense not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch expense",
		})
	}

	user, ok := c.Locals("user").(Models.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated",
		})
	}
	if user.Permission == 1 {
		if expense.SubmittedBy != user.ID {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"message": "Not your expense",
			})
		}
		if expense.Status != "pending" {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"message": "Only pending expenses can be edited",
			})
		}
	}

	var input UpdateExpenseInput
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

	if input.CategoryID != nil {
		expense.CategoryID = *input.CategoryID
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.DocumentURL != nil {
		expense.DocumentURL = *input.DocumentURL
	}
	if input.FuelQuantity != nil {
		expense.FuelQuantity = *input.FuelQuantity
	}

	if err := h.DB.Save(&expense).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't update expense",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Expense updated",
		"data":    expense,
	})
}

type ReviewExpenseInput struct {
	Status       string `json:"status" validate:"required,oneof=approved denied"`
	AdminRemarks string `json:"admin_remarks"`
}

// ReviewExpense approves or denies a pending expense, stamping who
// decided and when. Only approved expenses reach the trip sheets.
func (h *ExpenseHandler) ReviewExpense(c *fiber.Ctx) error {
	var expense Models.Expense
	if err := h.DB.First(&expense, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Expense not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch expense",
		})
	}

	var input ReviewExpenseInput
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

	user, _ := c.Locals("user").(Models.User)
	now := time.Now()
	expense.Status = input.Status
	expense.AdminRemarks = input.AdminRemarks
	expense.ApprovedBy = &user.ID
	expense.ApprovedAt = &now

	if err := h.DB.Save(&expense).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't review expense",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Expense " + input.Status,
		"data":    expense,
	})
}

func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	var expense Models.Expense
	if err := h.DB.First(&expense, c.Params("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"message": "Expense not found",
			})
		}
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't fetch expense",
		})
	}

	user, ok := c.Locals("user").(Models.User)
	if ok && user.Permission == 1 {
		if expense.SubmittedBy != user.ID || expense.Status != "pending" {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"message": "Only your pending expenses can be deleted",
			})
		}
	}

	if err := h.DB.Delete(&expense).Error; err != nil {
		log.Println(err.Error())
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Couldn't delete expense",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Expense deleted",
	})
}
