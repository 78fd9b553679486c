package Reports

import (
	"Fleet/Models"
)

// BusTripData collects one bus's sheet rows for the period.
type BusTripData struct {
	VehicleNo string
	TripCount int
	Rows      []TripRow
}

// UnknownVehicle labels trips whose bus record is missing.
const UnknownVehicle = "Unknown"

// GroupByBus splits trips into per-bus sheet data keyed by registration
// number, preserving first-seen order. Trips without a bus are grouped
// under UnknownVehicle. expensesByTrip maps trip ID to its approved
// expenses.
func GroupByBus(trips []Models.Trip, expensesByTrip map[uint][]ExpenseItem) []BusTripData {
	index := make(map[string]int)
	var buses []BusTripData

	for _, trip := range trips {
		vehicle := UnknownVehicle
		if trip.Bus != nil && trip.Bus.RegistrationNumber != "" {
			vehicle = trip.Bus.RegistrationNumber
		}
		i, ok := index[vehicle]
		if !ok {
			i = len(buses)
			index[vehicle] = i
			buses = append(buses, BusTripData{VehicleNo: vehicle})
		}
		buses[i].TripCount++
		buses[i].Rows = append(buses[i].Rows, TripRows(trip, expensesByTrip[trip.ID])...)
	}
	return buses
}

// BusTotals produces the TOTAL row for a bus sheet: column sums for
// distance, every revenue channel, every expense bucket and net income.
// Text columns stay blank.
func BusTotals(rows []TripRow) TripRow {
	total := TripRow{Date: "TOTAL"}
	for _, row := range rows {
		total.DistanceKM += row.DistanceKM
		total.RevenueCash += row.RevenueCash
		total.RevenueOnline += row.RevenueOnline
		total.RevenuePaytm += row.RevenuePaytm
		total.RevenueOthers += row.RevenueOthers
		total.RevenueAgent += row.RevenueAgent
		total.RevenueTotal += row.RevenueTotal
		total.Expenses = total.Expenses.Add(row.Expenses)
		total.ExpenseTotal += row.ExpenseTotal
		total.NetIncome += row.NetIncome
	}
	return total
}

// SummaryLine is one row of the fleet summary sheet.
type SummaryLine struct {
	VehicleNo  string
	TripCount  int
	DistanceKM float64
	Revenue    float64
	Expenses   float64
	NetIncome  float64
}

// FleetSummary returns the per-bus summary lines and the fleet total
// line, which is the column-wise sum of the per-bus lines.
func FleetSummary(buses []BusTripData) ([]SummaryLine, SummaryLine) {
	lines := make([]SummaryLine, 0, len(buses))
	var fleet SummaryLine
	fleet.VehicleNo = "FLEET TOTAL"

	for _, bus := range buses {
		totals := BusTotals(bus.Rows)
		line := SummaryLine{
			VehicleNo:  bus.VehicleNo,
			TripCount:  bus.TripCount,
			DistanceKM: totals.DistanceKM,
			Revenue:    totals.RevenueTotal,
			Expenses:   totals.ExpenseTotal,
			NetIncome:  totals.NetIncome,
		}
		lines = append(lines, line)

		fleet.TripCount += line.TripCount
		fleet.DistanceKM += line.DistanceKM
		fleet.Revenue += line.Revenue
		fleet.Expenses += line.Expenses
		fleet.NetIncome += line.NetIncome
	}
	return lines, fleet
}
