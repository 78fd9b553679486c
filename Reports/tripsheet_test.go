package Reports

import (
	"testing"
	"time"

	"Fleet/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func sampleTrip() Models.Trip {
	return Models.Trip{
		TripDate:           "2026-08-12",
		StartDate:          time.Date(2026, 8, 12, 6, 0, 0, 0, time.UTC),
		TripType:           "one_way",
		DepartureTime:      "06:30",
		ArrivalTime:        "14:30",
		OdometerStart:      floatPtr(42000),
		OdometerEnd:        floatPtr(42380),
		DriverNameSnapshot: "Ramesh Kumar",
		RevenueCash:        800,
		RevenueOnline:      400,
		RevenuePaytm:       200,
		RevenueOthers:      50,
		RevenueAgent:       50,
		Route: &Models.Route{
			RouteName:   "Delhi - Jaipur",
			FromAddress: "Delhi ISBT",
			ToAddress:   "Jaipur Sindhi Camp",
		},
	}
}

func TestTripRowsOneWay(t *testing.T) {
	trip := sampleTrip()
	expenses := []ExpenseItem{
		{CategoryName: "Diesel", Amount: 200},
		{CategoryName: "Toll Plaza", Amount: 100},
		{CategoryName: "Snacks", Amount: 50},
	}

	rows := TripRows(trip, expenses)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "12/8/26", row.Date)
	assert.Equal(t, "06:30 am", row.HoursOut)
	assert.Equal(t, "02:30 pm", row.HoursReturned)
	assert.Equal(t, "Delhi ISBT", row.From)
	assert.Equal(t, "Jaipur Sindhi Camp", row.To)
	assert.Equal(t, 380.0, row.DistanceKM)
	assert.Equal(t, "Trip", row.Reason)
	assert.Equal(t, "Ramesh Kumar", row.DriverName)
	assert.Equal(t, "→ Outward", row.Direction)
	assert.Equal(t, 1500.0, row.RevenueTotal)
	assert.Equal(t, 350.0, row.ExpenseTotal)
	assert.Equal(t, 1150.0, row.NetIncome)
}

func TestTripRowsRecomputesRevenue(t *testing.T) {
	trip := sampleTrip()
	trip.TotalRevenue = 99999 // stale stored value must never leak into the sheet

	rows := TripRows(trip, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 1500.0, rows[0].RevenueTotal)
}

func TestTripRowsTwoWaySplitsExpenses(t *testing.T) {
	trip := sampleTrip()
	trip.TripType = "two_way"
	trip.ReturnDepartureTime = "16:00"
	trip.ReturnArrivalTime = "23:45"
	trip.ReturnOdometerStart = floatPtr(42380)
	trip.ReturnOdometerEnd = floatPtr(42760)
	trip.ReturnRevenueCash = 500
	trip.ReturnRevenueOnline = 300

	expenses := []ExpenseItem{
		{CategoryName: "Diesel", Amount: 250},
		{CategoryName: "Toll Plaza", Amount: 100},
	}

	rows := TripRows(trip, expenses)
	require.Len(t, rows, 2)

	outward, ret := rows[0], rows[1]

	assert.Equal(t, 175.0, outward.ExpenseTotal)
	assert.Equal(t, 175.0, ret.ExpenseTotal)
	assert.Equal(t, 125.0, outward.Expenses.Diesel)
	assert.Equal(t, 50.0, outward.Expenses.Route)

	assert.Equal(t, 1500.0, outward.RevenueTotal)
	assert.Equal(t, 1325.0, outward.NetIncome)
	assert.Equal(t, 800.0, ret.RevenueTotal)
	assert.Equal(t, 625.0, ret.NetIncome)

	// Return leg swaps the journey and keeps its own clock
	assert.Equal(t, "Jaipur Sindhi Camp", ret.From)
	assert.Equal(t, "Delhi ISBT", ret.To)
	assert.Equal(t, "Return", ret.Reason)
	assert.Equal(t, "↩ Return", ret.Direction)
	assert.Equal(t, "04:00 pm", ret.HoursOut)
	assert.Equal(t, "11:45 pm", ret.HoursReturned)
	assert.Equal(t, 380.0, ret.DistanceKM)
}

func TestTripRowsMissingValues(t *testing.T) {
	trip := Models.Trip{
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		TripType:  "one_way",
	}

	rows := TripRows(trip, []ExpenseItem{{CategoryName: "Diesel", Amount: 100}})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Nil(t, row.OdometerStart)
	assert.Nil(t, row.OdometerFinished)
	assert.Equal(t, 0.0, row.DistanceKM)
	assert.Equal(t, "", row.From)
	assert.Equal(t, "", row.To)
	assert.Equal(t, 0.0, row.RevenueTotal)
	// Losses are reported as-is, never clamped to zero
	assert.Equal(t, -100.0, row.NetIncome)
}

func TestTripEndpointsFallsBackToRouteName(t *testing.T) {
	trip := sampleTrip()
	trip.Route.FromAddress = ""
	trip.Route.ToAddress = ""

	rows := TripRows(trip, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Delhi", rows[0].From)
	assert.Equal(t, "Jaipur", rows[0].To)
}

func TestTripRowsReason(t *testing.T) {
	trip := sampleTrip()
	trip.Notes = "Wedding party charter"

	rows := TripRows(trip, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wedding party charter", rows[0].Reason)
}
