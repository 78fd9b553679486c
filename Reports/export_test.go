package Reports

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPeriodWorkbookEmpty(t *testing.T) {
	f, err := BuildPeriodWorkbook(nil, "August 2026")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrNoTrips)
}

func TestBuildPeriodWorkbook(t *testing.T) {
	buses := []BusTripData{
		{
			VehicleNo: "KA01AB1234",
			TripCount: 2,
			Rows: []TripRow{
				{
					Date: "12/8/26", From: "Delhi", To: "Jaipur",
					Direction: "→ Outward", DistanceKM: 380,
					RevenueCash: 1500, RevenueTotal: 1500,
					Expenses: Buckets{Diesel: 350}, ExpenseTotal: 350, NetIncome: 1150,
				},
				{
					Date: "13/8/26", From: "Jaipur", To: "Delhi",
					Direction: "↩ Return", DistanceKM: 380,
					RevenueCash: 800, RevenueTotal: 800,
					Expenses: Buckets{Diesel: 175}, ExpenseTotal: 175, NetIncome: 625,
				},
			},
		},
		{
			VehicleNo: "KA02CD5678",
			TripCount: 1,
			Rows: []TripRow{
				{Date: "14/8/26", RevenueTotal: 400, ExpenseTotal: 100, NetIncome: 300},
			},
		},
	}

	f, err := BuildPeriodWorkbook(buses, "August 2026")
	require.NoError(t, err)

	sheets := f.GetSheetList()
	assert.NotContains(t, sheets, "Sheet1")
	assert.Contains(t, sheets, "KA01AB1234")
	assert.Contains(t, sheets, "KA02CD5678")
	assert.Contains(t, sheets, "Summary")

	title, _ := f.GetCellValue("KA01AB1234", "A1")
	assert.Equal(t, "BUS TRIP SHEET", title)
	vehicle, _ := f.GetCellValue("KA01AB1234", "A2")
	assert.Equal(t, "Vehicle No: KA01AB1234", vehicle)
	period, _ := f.GetCellValue("KA01AB1234", "D2")
	assert.Equal(t, "Period: August 2026", period)

	// Header row spans A through Y
	first, _ := f.GetCellValue("KA01AB1234", "A4")
	assert.Equal(t, "Date", first)
	direction, _ := f.GetCellValue("KA01AB1234", "K4")
	assert.Equal(t, "Direction", direction)
	agent, _ := f.GetCellValue("KA01AB1234", "P4")
	assert.Equal(t, "Agent", agent)
	last, _ := f.GetCellValue("KA01AB1234", "Y4")
	assert.Equal(t, "N.Income", last)

	// TOTAL row follows the two data rows
	label, _ := f.GetCellValue("KA01AB1234", "A7")
	assert.Equal(t, "TOTAL", label)
	revenue, _ := f.GetCellValue("KA01AB1234", "Q7")
	assert.Equal(t, "2300", revenue)
	net, _ := f.GetCellValue("KA01AB1234", "Y7")
	assert.Equal(t, "1775", net)

	// Summary sheet carries the fleet total
	summaryTitle, _ := f.GetCellValue("Summary", "A1")
	assert.Equal(t, "FLEET SUMMARY", summaryTitle)
	fleetLabel, _ := f.GetCellValue("Summary", "A7")
	assert.Equal(t, "FLEET TOTAL", fleetLabel)
	fleetTrips, _ := f.GetCellValue("Summary", "B7")
	assert.Equal(t, "3", fleetTrips)
	fleetNet, _ := f.GetCellValue("Summary", "F7")
	assert.Equal(t, "2075", fleetNet)
}

func TestBuildTripWorkbook(t *testing.T) {
	rows := []TripRow{
		{Date: "12/8/26", RevenueCash: 1500, RevenueTotal: 1500, ExpenseTotal: 350, NetIncome: 1150},
	}

	f, err := BuildTripWorkbook(rows, "KA01AB1234", "2026-08-12")
	require.NoError(t, err)

	sheets := f.GetSheetList()
	assert.Equal(t, []string{"Trip Sheet"}, sheets)

	vehicle, _ := f.GetCellValue("Trip Sheet", "B2")
	assert.Equal(t, "KA01AB1234", vehicle)

	// 23 column layout: no Direction or Agent
	k4, _ := f.GetCellValue("Trip Sheet", "K4")
	assert.Equal(t, "Cash", k4)
	w4, _ := f.GetCellValue("Trip Sheet", "W4")
	assert.Equal(t, "N.Income", w4)

	// Data padded to ten rows before the TOTAL line
	label, _ := f.GetCellValue("Trip Sheet", "A15")
	assert.Equal(t, "TOTAL", label)
	net, _ := f.GetCellValue("Trip Sheet", "W15")
	assert.Equal(t, "1150", net)

	// Filler rows carry zeros in the numeric total columns and stay
	// blank elsewhere
	for row := 6; row <= 14; row++ {
		for _, col := range []string{"H", "O", "V", "W"} {
			value, _ := f.GetCellValue("Trip Sheet", fmt.Sprintf("%s%d", col, row))
			assert.Equal(t, "0", value, "%s%d", col, row)
		}
		date, _ := f.GetCellValue("Trip Sheet", fmt.Sprintf("A%d", row))
		assert.Equal(t, "", date)
	}
}

func TestBuildTripWorkbookEmpty(t *testing.T) {
	_, err := BuildTripWorkbook(nil, "KA01AB1234", "")
	assert.ErrorIs(t, err, ErrNoTrips)
}

func TestUniqueSheetName(t *testing.T) {
	used := make(map[string]bool)

	long := strings.Repeat("R", 40)
	name := uniqueSheetName(long, used)
	assert.Len(t, name, 31)

	again := uniqueSheetName(long, used)
	assert.Len(t, again, 31)
	assert.NotEqual(t, name, again)
	assert.True(t, strings.HasSuffix(again, " (2)"))

	third := uniqueSheetName(long, used)
	assert.True(t, strings.HasSuffix(third, " (3)"))

	assert.Equal(t, UnknownVehicle, uniqueSheetName("", used))
	assert.Equal(t, "KA01-AB", uniqueSheetName("KA01/AB", used))
}
