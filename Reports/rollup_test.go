package Reports

import (
	"testing"
	"time"

	"Fleet/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func tripForBus(reg string, day int, cash float64) Models.Trip {
	var bus *Models.Bus
	if reg != "" {
		bus = &Models.Bus{RegistrationNumber: reg}
	}
	return Models.Trip{
		Model:       gorm.Model{ID: uint(day)},
		StartDate:   time.Date(2026, 8, day, 6, 0, 0, 0, time.UTC),
		TripType:    "one_way",
		RevenueCash: cash,
		Bus:         bus,
		Route:       &Models.Route{FromAddress: "A", ToAddress: "B"},
	}
}

func TestGroupByBus(t *testing.T) {
	trips := []Models.Trip{
		tripForBus("KA01AB1234", 1, 1000),
		tripForBus("KA02CD5678", 2, 500),
		tripForBus("KA01AB1234", 3, 700),
		tripForBus("", 4, 300),
	}

	buses := GroupByBus(trips, nil)
	require.Len(t, buses, 3)

	assert.Equal(t, "KA01AB1234", buses[0].VehicleNo)
	assert.Equal(t, 2, buses[0].TripCount)
	assert.Len(t, buses[0].Rows, 2)

	assert.Equal(t, "KA02CD5678", buses[1].VehicleNo)
	assert.Equal(t, 1, buses[1].TripCount)

	assert.Equal(t, UnknownVehicle, buses[2].VehicleNo)
	assert.Equal(t, 300.0, buses[2].Rows[0].RevenueTotal)
}

func TestGroupByBusTwoWayCountsOneTrip(t *testing.T) {
	trip := tripForBus("KA01AB1234", 1, 1000)
	trip.TripType = "two_way"
	trip.ReturnRevenueCash = 600

	buses := GroupByBus([]Models.Trip{trip}, nil)
	require.Len(t, buses, 1)

	// A two-way trip is two sheet rows but one trip
	assert.Len(t, buses[0].Rows, 2)
	assert.Equal(t, 1, buses[0].TripCount)
}

func TestGroupByBusExpenses(t *testing.T) {
	trips := []Models.Trip{tripForBus("KA01AB1234", 1, 1000)}
	expenses := map[uint][]ExpenseItem{
		1: {{CategoryName: "Diesel", Amount: 400}},
	}

	buses := GroupByBus(trips, expenses)
	require.Len(t, buses, 1)
	require.Len(t, buses[0].Rows, 1)
	assert.Equal(t, 400.0, buses[0].Rows[0].Expenses.Diesel)
	assert.Equal(t, 600.0, buses[0].Rows[0].NetIncome)
}

func TestBusTotals(t *testing.T) {
	rows := []TripRow{
		{
			DistanceKM:   380,
			RevenueCash:  800,
			RevenueTotal: 1500,
			Expenses:     Buckets{Diesel: 200, Route: 150},
			ExpenseTotal: 350,
			NetIncome:    1150,
		},
		{
			DistanceKM:   380,
			RevenueCash:  500,
			RevenueTotal: 800,
			Expenses:     Buckets{Diesel: 100, Others: 75},
			ExpenseTotal: 175,
			NetIncome:    625,
		},
	}

	total := BusTotals(rows)
	assert.Equal(t, "TOTAL", total.Date)
	assert.Equal(t, "", total.From)
	assert.Equal(t, 760.0, total.DistanceKM)
	assert.Equal(t, 1300.0, total.RevenueCash)
	assert.Equal(t, 2300.0, total.RevenueTotal)
	assert.Equal(t, 300.0, total.Expenses.Diesel)
	assert.Equal(t, 525.0, total.ExpenseTotal)
	assert.Equal(t, 1775.0, total.NetIncome)
}

func TestFleetSummary(t *testing.T) {
	buses := []BusTripData{
		{
			VehicleNo: "KA01AB1234",
			TripCount: 2,
			Rows: []TripRow{
				{DistanceKM: 380, RevenueTotal: 1500, ExpenseTotal: 350, NetIncome: 1150},
				{DistanceKM: 380, RevenueTotal: 800, ExpenseTotal: 175, NetIncome: 625},
			},
		},
		{
			VehicleNo: "KA02CD5678",
			TripCount: 1,
			Rows: []TripRow{
				{DistanceKM: 120, RevenueTotal: 400, ExpenseTotal: 500, NetIncome: -100},
			},
		},
	}

	lines, fleet := FleetSummary(buses)
	require.Len(t, lines, 2)

	assert.Equal(t, 2, lines[0].TripCount)
	assert.Equal(t, 2300.0, lines[0].Revenue)
	assert.Equal(t, -100.0, lines[1].NetIncome)

	assert.Equal(t, "FLEET TOTAL", fleet.VehicleNo)
	assert.Equal(t, 3, fleet.TripCount)
	assert.Equal(t, 880.0, fleet.DistanceKM)
	assert.Equal(t, 2700.0, fleet.Revenue)
	assert.Equal(t, 1025.0, fleet.Expenses)
	assert.Equal(t, 1675.0, fleet.NetIncome)
	assert.InDelta(t, fleet.Revenue-fleet.Expenses, fleet.NetIncome, 1e-9)
}
