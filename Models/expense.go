package Models

import (
	"time"

	"gorm.io/gorm"
)

type ExpenseCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Expense struct {
	gorm.Model
	TripID      uint    `json:"trip_id" gorm:"index"`
	CategoryID  uint    `json:"category_id" gorm:"index"`
	SubmittedBy uint    `json:"submitted_by"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"` // "2006-01-02"
	Description string  `json:"description"`
	DocumentURL string  `json:"document_url"`

	// Litres, only meaningful for fuel expenses
	FuelQuantity float64 `json:"fuel_quantity"`

	Status       string     `json:"status" gorm:"default:pending"` // pending, approved, denied
	AdminRemarks string     `json:"admin_remarks"`
	ApprovedBy   *uint      `json:"approved_by"`
	ApprovedAt   *time.Time `json:"approved_at"`

	Trip     *Trip            `json:"trip,omitempty" gorm:"foreignKey:TripID"`
	Category *ExpenseCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
