package Models

import (
	"gorm.io/gorm"
)

type Bus struct {
	gorm.Model
	RegistrationNumber string `json:"registration_number" gorm:"uniqueIndex"`
	BusName            string `json:"bus_name"`
	Capacity           int    `json:"capacity"`
	BusType            string `json:"bus_type"` // AC Sleeper, Non-AC Seater, etc.
	Status             string `json:"status" gorm:"default:active"`

	// Document expiry dates, stored as "2006-01-02"
	InsuranceExpiryDate string `json:"insurance_expiry_date"`
	PUCExpiryDate       string `json:"puc_expiry_date"`
	FitnessExpiryDate   string `json:"fitness_expiry_date"`

	// Ownership and profit sharing
	OwnershipType string  `json:"ownership_type" gorm:"default:owned"` // owned or partnership
	PartnerName   string  `json:"partner_name"`
	OwnerShare    float64 `json:"owner_share"`
	PartnerShare  float64 `json:"partner_share"`

	// Road tax tracking
	MonthlyTaxAmount float64 `json:"monthly_tax_amount"`
	TaxDueDay        int     `json:"tax_due_day"`
	LastTaxPaidDate  string  `json:"last_tax_paid_date"`
	NextTaxDueDate   string  `json:"next_tax_due_date"`
}

type BusTaxRecord struct {
	gorm.Model
	BusID       uint    `json:"bus_id" gorm:"index"`
	PeriodMonth string  `json:"period_month"` // "2006-01"
	AmountDue   float64 `json:"amount_due"`
	AmountPaid  float64 `json:"amount_paid"`
	PaidDate    string  `json:"paid_date"`
	Status      string  `json:"status" gorm:"default:pending"` // pending, paid, overdue
	Remarks     string  `json:"remarks"`

	Bus *Bus `json:"bus,omitempty" gorm:"foreignKey:BusID"`
}
