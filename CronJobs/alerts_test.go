package CronJobs

import (
	"testing"
	"time"

	"Fleet/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func TestBuildStockAlertHTML(t *testing.T) {
	items := []Models.StockItem{
		{Name: "Engine Oil", Unit: "litre", Quantity: 2, MinQuantity: 10},
		{Name: "Coolant", Unit: "litre", Quantity: 0, MinQuantity: 5},
	}
	html := buildStockAlertHTML(items)
	assert.Contains(t, html, "<table")
	assert.Contains(t, html, "Engine Oil")
	assert.Contains(t, html, "Coolant")
	assert.Contains(t, html, "10.00")
}

func TestBuildTaxAlertHTML(t *testing.T) {
	buses := []Models.Bus{
		{RegistrationNumber: "KA01AB1234", BusName: "Express 1", MonthlyTaxAmount: 5000, NextTaxDueDate: "2026-09-01"},
		{RegistrationNumber: "KA02CD5678", BusName: "Express 2", MonthlyTaxAmount: 4500, NextTaxDueDate: "2026-08-01"},
	}
	now := mustParse(t, "2026-08-28")
	html := buildTaxAlertHTML(buses, now)
	assert.Contains(t, html, "KA01AB1234")
	assert.Contains(t, html, "upcoming")
	assert.Contains(t, html, "OVERDUE")
}
